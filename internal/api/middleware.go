// Package api implements the folio REST API using chi.
package api

import (
	"net/http"
	"strings"
)

// Cache lifetimes by route family.
const (
	cacheFeeds   = "public, max-age=86400"
	cacheContent = "public, max-age=60"
	cacheNone    = "no-store"
)

// CacheControl sets a Cache-Control header by path. Feeds change rarely,
// listings follow the content directory, and live endpoints are never cached.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		switch {
		case p == FeedPath || p == SitemapPath:
			w.Header().Set("Cache-Control", cacheFeeds)
		case strings.HasSuffix(p, "/events"), strings.HasPrefix(p, "/health"), strings.HasSuffix(p, "/search"):
			w.Header().Set("Cache-Control", cacheNone)
		default:
			w.Header().Set("Cache-Control", cacheContent)
		}
		next.ServeHTTP(w, r)
	})
}
