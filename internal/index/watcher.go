package index

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jinunyachhyon/folio/internal/models"
	"github.com/jinunyachhyon/folio/internal/storage"
)

// debounce coalesces bursts of file events (editors often write a file
// several times on save) into a single reload.
const debounce = 200 * time.Millisecond

// ErrContentDirGone is returned by Watch when the watched directory is
// removed or renamed.
var ErrContentDirGone = errors.New("content directory gone")

// EventCallback is called after a watcher-driven index change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, slug string)

// Reloader is the content repository as seen by the watcher.
type Reloader interface {
	Reload()
	ListPosts() []models.BlogPost
}

// Watch starts an fsnotify watcher on the content directory and processes
// file change events until ctx is cancelled. Each burst of changes to
// content files reloads repo, resyncs the index and calls cb (if non-nil)
// once per post that was created, updated or deleted.
func Watch(ctx context.Context, db *DB, repo Reloader, dir string, exts []string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}
	if len(exts) == 0 {
		exts = storage.DefaultExtensions
	}

	logger.Info("watcher: started", slog.String("root", dir))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(debounce)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			Refresh(db, repo, logger, cb)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == filepath.Clean(dir) {
				if ev.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// The kernel drops the watch with the directory; the
				// refresh switches the repository to its fallback.
				logger.Warn("watcher: content directory gone", slog.String("op", ev.Op.String()))
				if reloadTimer != nil {
					reloadTimer.Stop()
				}
				Refresh(db, repo, logger, cb)
				return ErrContentDirGone
			}
			if !hasExt(ev.Name, exts) || strings.HasPrefix(filepath.Base(ev.Name), ".") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("watcher: event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			scheduleReload()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// Supervise runs Watch on dir and restarts it every retry interval when the
// directory is missing or goes away. Each restart refreshes the repository
// first, so a directory that appears later is served and indexed.
func Supervise(ctx context.Context, db *DB, repo Reloader, dir string, exts []string, logger *slog.Logger, cb EventCallback, retry time.Duration) {
	for {
		err := Watch(ctx, db, repo, dir, exts, logger, cb)
		if ctx.Err() != nil {
			return
		}
		if err != nil && !errors.Is(err, ErrContentDirGone) {
			logger.Info("watcher: content directory unavailable, retrying",
				slog.String("root", dir), slog.Duration("retry", retry), slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
		Refresh(db, repo, logger, cb)
	}
}

// Refresh reloads the repository snapshot, resyncs the index and reports
// each change to cb.
func Refresh(db *DB, repo Reloader, logger *slog.Logger, cb EventCallback) {
	repo.Reload()
	ch, err := Sync(db, repo.ListPosts(), logger)
	if err != nil {
		logger.Warn("watcher: sync failed", slog.String("error", err.Error()))
		return
	}
	if ch.Empty() {
		return
	}
	logger.Info("watcher: reloaded",
		slog.Int("created", len(ch.Created)),
		slog.Int("updated", len(ch.Updated)),
		slog.Int("deleted", len(ch.Deleted)))
	if cb == nil {
		return
	}
	for _, s := range ch.Created {
		cb(ChangeCreated, s)
	}
	for _, s := range ch.Updated {
		cb(ChangeUpdated, s)
	}
	for _, s := range ch.Deleted {
		cb(ChangeDeleted, s)
	}
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.EqualFold(e, ext) || strings.EqualFold("."+e, ext) {
			return true
		}
	}
	return false
}
