// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/jinunyachhyon/folio/internal/api"
	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/index"
	"github.com/jinunyachhyon/folio/internal/mcpserver"
	"github.com/jinunyachhyon/folio/internal/siteservice"
	"github.com/jinunyachhyon/folio/internal/sse"
)

const (
	shutdownTimeout = 10 * time.Second
	watchRetry      = 5 * time.Second
	listingThrottle = 2 * time.Second
)

// components are shared by the HTTP and MCP entry points.
type components struct {
	logger *slog.Logger
	repo   *content.Repository
	db     *index.DB
	svc    *siteservice.Service
}

// bootstrap installs the logger, loads content and syncs the index.
func bootstrap(app *application, logOut io.Writer) (*components, error) {
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("version", app.version),
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("content_path", cfg.Content.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	repo := content.OpenRepository(cfg.Content.Path, cfg.Content.Extensions, logger, time.Now)

	// Initialize SQLite index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init index: %w", err)
	}

	// Run initial sync.
	if ch, err := index.Sync(db, repo.ListPosts(), logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	} else {
		logger.Info("initial sync done",
			slog.String("source", repo.Source()),
			slog.Int("created", len(ch.Created)),
			slog.Int("updated", len(ch.Updated)),
			slog.Int("deleted", len(ch.Deleted)))
	}

	return &components{
		logger: logger,
		repo:   repo,
		db:     db,
		svc:    siteservice.NewService(repo, db, nil, logger),
	}, nil
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := newApplication(opts)
	rt, err := bootstrap(app, os.Stdout)
	if err != nil {
		return err
	}
	defer rt.db.Close()

	cfg := app.config
	logger := rt.logger

	// SSE broker.
	broker := sse.NewBroker(listingThrottle)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := rt.svc.Ready(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Feeds at the site root.
	feeds := api.NewFeedHandler(rt.svc, api.Site{
		Name:        cfg.Site.Name,
		URL:         cfg.Site.URL,
		Description: cfg.Site.Description,
	})
	r.With(api.CacheControl).Get(api.FeedPath, feeds.RSS)
	r.With(api.CacheControl).Get(api.SitemapPath, feeds.Sitemap)

	// Mount API routes under /api.
	r.Mount("/api", api.NewRouter(rt.svc, broker))

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start file watcher with SSE callback.
	if cfg.Content.Watch {
		g.Go(func() error {
			index.Supervise(gCtx, rt.db, rt.repo, cfg.Content.Path, cfg.Content.Extensions, logger,
				func(kind, slug string) {
					broker.PublishPostEvent(kind, slug)
				}, watchRetry)
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		// Ends open event streams so Shutdown does not wait on them.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		// Stops the watcher when shutdown came from a signal.
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

var errShutdown = errors.New("shutdown")

// RunMCP serves the MCP tools on stdin/stdout. Logs go to stderr so they
// never interleave with the protocol stream.
func RunMCP(_ context.Context, opts ...Option) error {
	app := newApplication(opts)
	rt, err := bootstrap(app, os.Stderr)
	if err != nil {
		return err
	}
	defer rt.db.Close()

	rt.logger.Info("MCP server starting on stdio")
	return mcpserver.New(rt.svc, app.version).ServeStdio()
}
