package api

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/jinunyachhyon/folio/internal/models"
	"github.com/jinunyachhyon/folio/internal/siteservice"
)

// Feed routes, mounted at the site root.
const (
	FeedPath    = "/rss.xml"
	SitemapPath = "/sitemap.xml"
)

// Site describes the public site the feeds link to.
type Site struct {
	Name        string
	URL         string
	Description string
}

// FeedHandler serves the RSS feed and the sitemap.
type FeedHandler struct {
	svc  *siteservice.Service
	site Site
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(svc *siteservice.Service, site Site) *FeedHandler {
	return &FeedHandler{svc: svc, site: site}
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RSS handles GET /rss.xml.
func (f *FeedHandler) RSS(w http.ResponseWriter, r *http.Request) {
	posts := f.svc.Posts(r.Context())
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := buildURL(f.site.URL, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			Author:      p.Author,
			Categories:  p.Tags,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        link,
		})
	}
	writeXML(w, rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       f.site.Name,
			Link:        f.site.URL,
			Description: f.site.Description,
			Items:       items,
		},
	}, "application/rss+xml; charset=utf-8")
}

// Sitemap handles GET /sitemap.xml.
func (f *FeedHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	posts := f.svc.Posts(r.Context())
	urls := []sitemapURL{
		{Loc: buildURL(f.site.URL)},
		{Loc: buildURL(f.site.URL, "blog"), LastMod: latest(posts)},
		{Loc: buildURL(f.site.URL, "publications")},
		{Loc: buildURL(f.site.URL, "experience")},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     buildURL(f.site.URL, "blog", p.Slug),
			LastMod: p.DateString(),
		})
	}
	writeXML(w, sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "application/xml; charset=utf-8")
}

func writeXML(w http.ResponseWriter, v any, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		slog.Error("xml encode failed", slog.String("error", err.Error()))
	}
}

// buildURL joins path segments onto base, keeping a trailing slash on
// non-root pages.
func buildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(segments...))
	if len(segments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// latest returns the date of the newest post; posts are newest first.
func latest(posts []models.BlogPost) string {
	if len(posts) == 0 {
		return ""
	}
	return posts[0].DateString()
}
