package api

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jinunyachhyon/folio/internal/siteservice"
	"github.com/jinunyachhyon/folio/internal/testutil"
)

// testEnv sets up a repository over files (built-in posts when nil), an
// indexed SQLite DB, the service and the API router.
func testEnv(t *testing.T, files map[string]string) (*siteservice.Service, http.Handler) {
	t.Helper()
	return testEnvWithSSE(t, files, nil)
}

func testEnvWithSSE(t *testing.T, files map[string]string, sseHandler http.Handler) (*siteservice.Service, http.Handler) {
	t.Helper()
	dir := ""
	if files != nil {
		dir = testutil.TestContent(t, files)
	}
	repo := testutil.TestRepository(t, dir)
	svc := siteservice.NewService(repo, testutil.SyncedDB(t, repo), nil, testutil.Quiet)
	return svc, NewRouter(svc, sseHandler)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestListPosts(t *testing.T) {
	_, router := testEnv(t, nil)

	w := get(t, router, "/posts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp PostListing
	decode(t, w, &resp)
	if resp.Total != 8 {
		t.Errorf("total = %d, want 8", resp.Total)
	}
	if resp.Source != "fallback" {
		t.Errorf("source = %q", resp.Source)
	}
}

func TestListPosts_Filtered(t *testing.T) {
	_, router := testEnv(t, map[string]string{
		"go.md":   "---\ntitle: Go\ndate: 2024-01-01\ntags: [go]\n---\nbody",
		"rust.md": "---\ntitle: Rust\ndate: 2023-01-01\ntags: [rust]\n---\nbody",
		"both.md": "---\ntitle: Both\ndate: 2023-06-01\ntags: [go, rust]\n---\nbody",
	})

	w := get(t, router, "/posts?tags=go&year=2023&view=by-year")
	var resp PostListing
	decode(t, w, &resp)
	if resp.Total != 1 || resp.Posts[0].Slug != "both" {
		t.Fatalf("posts = %+v", resp.Posts)
	}
	if len(resp.Groups) != 1 || resp.Groups[0].Label != "2023" {
		t.Errorf("groups = %+v", resp.Groups)
	}
	if resp.Source != "directory" {
		t.Errorf("source = %q", resp.Source)
	}
	if !strings.Contains(resp.Query, "tags=go") {
		t.Errorf("query = %q", resp.Query)
	}
}

func TestGetPost(t *testing.T) {
	_, router := testEnv(t, map[string]string{
		"hello.md": "---\ntitle: Hello\ndate: 2024-01-01\n---\n# Hello\n\n## Setup\n\ntext",
	})

	w := get(t, router, "/posts/hello")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var post PostDetail
	decode(t, w, &post)
	if post.Title != "Hello" {
		t.Errorf("title = %q", post.Title)
	}
	if !strings.Contains(post.HTML, `id="setup"`) {
		t.Errorf("html = %q", post.HTML)
	}
	if len(post.Headings) != 2 {
		t.Errorf("headings = %+v", post.Headings)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	_, router := testEnv(t, nil)
	w := get(t, router, "/posts/missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	w = get(t, router, "/posts/missing/headings")
	if w.Code != http.StatusNotFound {
		t.Errorf("headings status = %d, want 404", w.Code)
	}
}

func TestGetHeadings(t *testing.T) {
	_, router := testEnv(t, nil)
	w := get(t, router, "/posts/multimodal-learning/headings")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp HeadingsResponse
	decode(t, w, &resp)
	if len(resp.Headings) == 0 {
		t.Error("expected headings")
	}
}

func TestListSeries(t *testing.T) {
	_, router := testEnv(t, nil)
	var resp SeriesResponse
	decode(t, get(t, router, "/series"), &resp)
	if len(resp.Series) != 1 || len(resp.Series[0].Posts) != 3 {
		t.Errorf("series = %+v", resp.Series)
	}
}

func TestTagCounts(t *testing.T) {
	_, router := testEnv(t, map[string]string{
		"a.md": "---\ntitle: A\ntags: [go, web]\n---\nx",
		"b.md": "---\ntitle: B\ntags: [go]\n---\ny",
	})
	var resp TagsResponse
	decode(t, get(t, router, "/tags"), &resp)
	if len(resp.Tags) != 2 || resp.Tags[0].Tag != "go" || resp.Tags[0].Count != 2 {
		t.Errorf("tags = %+v", resp.Tags)
	}
}

func TestListPublications(t *testing.T) {
	_, router := testEnv(t, nil)
	var resp PublicationListing
	decode(t, get(t, router, "/publications?type=conference"), &resp)
	for _, p := range resp.Publications {
		if p.PublicationType != "conference" {
			t.Errorf("unexpected type %q", p.PublicationType)
		}
	}
	if resp.Total == 0 {
		t.Error("expected conference publications")
	}
}

func TestPublicationTags(t *testing.T) {
	_, router := testEnv(t, nil)
	var resp PublicationTagsResponse
	decode(t, get(t, router, "/publications/tags"), &resp)
	if len(resp.Tags) == 0 {
		t.Error("expected tags")
	}
}

func TestListExperience(t *testing.T) {
	_, router := testEnv(t, nil)
	var resp ExperienceListing
	decode(t, get(t, router, "/experience?search=modulo"), &resp)
	if len(resp.Experiences) != 1 || resp.Experiences[0].ID != "exp3" {
		t.Errorf("experiences = %+v", resp.Experiences)
	}
}

func TestSearchEndpoint(t *testing.T) {
	_, router := testEnv(t, map[string]string{
		"go.md": "---\ntitle: Go\n---\nGoroutines are lightweight threads.",
	})
	w := get(t, router, "/search?q=goroutines")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SearchResponse
	decode(t, w, &resp)
	if len(resp.Results) != 1 || resp.Results[0].Slug != "go" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	_, router := testEnv(t, nil)
	w := get(t, router, "/search")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCacheControl(t *testing.T) {
	_, router := testEnv(t, nil)
	if got := get(t, router, "/posts").Header().Get("Cache-Control"); got != cacheContent {
		t.Errorf("posts Cache-Control = %q", got)
	}
	if got := get(t, router, "/search?q=x").Header().Get("Cache-Control"); got != cacheNone {
		t.Errorf("search Cache-Control = %q", got)
	}
}

func TestSSEEvents_Mounted(t *testing.T) {
	sseHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-r.Context().Done()
	})
	_, router := testEnvWithSSE(t, nil, sseHandler)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != cacheNone {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestRSS(t *testing.T) {
	svc, _ := testEnv(t, nil)
	feeds := NewFeedHandler(svc, Site{Name: "Folio", URL: "https://example.com", Description: "Posts"})

	w := httptest.NewRecorder()
	feeds.RSS(w, httptest.NewRequest(http.MethodGet, FeedPath, nil))
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("content type = %q", ct)
	}
	var feed rssXML
	if err := xml.Unmarshal(w.Body.Bytes(), &feed); err != nil {
		t.Fatal(err)
	}
	if len(feed.Channel.Items) != 8 {
		t.Fatalf("items = %d", len(feed.Channel.Items))
	}
	if got := feed.Channel.Items[0].Link; got != "https://example.com/blog/transformers-part-3-architecture/" {
		t.Errorf("first link = %q", got)
	}
}

func TestSitemap(t *testing.T) {
	svc, _ := testEnv(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: 2024-05-01\n---\nx",
	})
	feeds := NewFeedHandler(svc, Site{URL: "https://example.com/"})

	w := httptest.NewRecorder()
	feeds.Sitemap(w, httptest.NewRequest(http.MethodGet, SitemapPath, nil))
	var set sitemapURLSet
	if err := xml.Unmarshal(w.Body.Bytes(), &set); err != nil {
		t.Fatal(err)
	}
	if len(set.URLs) != 5 {
		t.Fatalf("urls = %+v", set.URLs)
	}
	last := set.URLs[len(set.URLs)-1]
	if last.Loc != "https://example.com/blog/a/" || last.LastMod != "2024-05-01" {
		t.Errorf("post url = %+v", last)
	}
}

func TestBuildURL(t *testing.T) {
	if got := buildURL("https://example.com", "blog", "x"); got != "https://example.com/blog/x/" {
		t.Errorf("got %q", got)
	}
	if got := buildURL("https://example.com"); got != "https://example.com" {
		t.Errorf("got %q", got)
	}
}
