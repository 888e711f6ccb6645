package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jinunyachhyon/folio/internal/siteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *siteservice.Service, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(CacheControl)

	// Blog.
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{slug}", h.GetPost)
	r.Get("/posts/{slug}/headings", h.GetHeadings)
	r.Get("/series", h.ListSeries)
	r.Get("/tags", h.TagCounts)

	// Publications and experience.
	r.Get("/publications", h.ListPublications)
	r.Get("/publications/tags", h.PublicationTags)
	r.Get("/experience", h.ListExperience)

	// Search.
	r.Get("/search", h.Search)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
