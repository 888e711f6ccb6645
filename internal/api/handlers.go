package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jinunyachhyon/folio/internal/apperr"
	"github.com/jinunyachhyon/folio/internal/siteservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *siteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *siteservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListPosts handles GET /api/posts.
//
//	@Summary		List blog posts for a filter query
//	@Tags			posts
//	@Produce		json
//	@Param			search	query		string	false	"Free-text search"
//	@Param			tags	query		string	false	"Comma-separated tags (any)"
//	@Param			year	query		string	false	"Publication year"
//	@Param			filter	query		string	false	"Post type"	Enums(all, standalone, series)
//	@Param			view	query		string	false	"Display mode"	Enums(all, by-year, by-type, series)
//	@Success		200		{object}	PostListing
//	@Router			/posts [get]
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListPosts(r.Context(), r.URL.Query())
	if err != nil {
		writeInternal(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// GetPost handles GET /api/posts/{slug}.
//
//	@Summary		Get a single post with rendered HTML and navigation
//	@Tags			posts
//	@Produce		json
//	@Param			slug	path		string	true	"Post slug"
//	@Success		200		{object}	PostDetail
//	@Failure		404		{object}	errResponse
//	@Router			/posts/{slug} [get]
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.svc.GetPost(r.Context(), slug)
	if err != nil {
		h.writeLookupError(w, "get post", slug, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetHeadings handles GET /api/posts/{slug}/headings.
//
//	@Summary		Get the table of contents of a post
//	@Tags			posts
//	@Produce		json
//	@Param			slug	path		string	true	"Post slug"
//	@Success		200		{object}	HeadingsResponse
//	@Failure		404		{object}	errResponse
//	@Router			/posts/{slug}/headings [get]
func (h *Handler) GetHeadings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	headings, err := h.svc.Headings(r.Context(), slug)
	if err != nil {
		h.writeLookupError(w, "get headings", slug, err)
		return
	}
	writeJSON(w, http.StatusOK, HeadingsResponse{Slug: slug, Headings: headings})
}

// ListSeries handles GET /api/series.
//
//	@Summary		List every series with its parts
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	SeriesResponse
//	@Router			/series [get]
func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.svc.ListSeries(r.Context())
	if err != nil {
		writeInternal(w, "list series", err)
		return
	}
	writeJSON(w, http.StatusOK, SeriesResponse{Series: series})
}

// TagCounts handles GET /api/tags.
//
//	@Summary		Tag usage across indexed posts
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	TagsResponse
//	@Router			/tags [get]
func (h *Handler) TagCounts(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.TagCounts(r.Context())
	if err != nil {
		writeInternal(w, "tag counts", err)
		return
	}
	writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}

// ListPublications handles GET /api/publications.
//
//	@Summary		List publications for a filter query
//	@Tags			publications
//	@Produce		json
//	@Param			search	query		string	false	"Free-text search"
//	@Param			tags	query		string	false	"Comma-separated tags (any)"
//	@Param			type	query		string	false	"Publication type"	Enums(all, journal, conference, preprint)
//	@Param			year	query		string	false	"Publication year"
//	@Param			view	query		string	false	"Display mode"	Enums(all, by-year, by-type)
//	@Success		200		{object}	PublicationListing
//	@Router			/publications [get]
func (h *Handler) ListPublications(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListPublications(r.Context(), r.URL.Query())
	if err != nil {
		writeInternal(w, "list publications", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// PublicationTags handles GET /api/publications/tags.
//
//	@Summary		List every publication tag
//	@Tags			publications
//	@Produce		json
//	@Success		200	{object}	PublicationTagsResponse
//	@Router			/publications/tags [get]
func (h *Handler) PublicationTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PublicationTagsResponse{Tags: h.svc.PublicationTags(r.Context())})
}

// ListExperience handles GET /api/experience.
//
//	@Summary		List experience entries for a filter query
//	@Tags			experience
//	@Produce		json
//	@Param			search	query		string	false	"Free-text search"
//	@Param			skills	query		string	false	"Comma-separated skills (any)"
//	@Success		200		{object}	ExperienceListing
//	@Router			/experience [get]
func (h *Handler) ListExperience(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListExperience(r.Context(), r.URL.Query())
	if err != nil {
		writeInternal(w, "list experience", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across posts
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
			return
		}
		writeInternal(w, "search", err, slog.String("query", q))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

func (h *Handler) writeLookupError(w http.ResponseWriter, op, slug string, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeInternal(w, op, err, slog.String("slug", slug))
}
