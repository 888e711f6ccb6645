package siteservice

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/jinunyachhyon/folio/internal/apperr"
	"github.com/jinunyachhyon/folio/internal/testutil"
)

func builtinService(t *testing.T) *Service {
	t.Helper()
	repo := testutil.TestRepository(t, "")
	return NewService(repo, testutil.SyncedDB(t, repo), nil, testutil.Quiet)
}

func TestListPosts_Default(t *testing.T) {
	svc := builtinService(t)
	l, err := svc.ListPosts(context.Background(), url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Total != 8 || len(l.Posts) != 8 {
		t.Fatalf("got %d posts, want 8", l.Total)
	}
	if l.Source != "fallback" {
		t.Errorf("source = %q", l.Source)
	}
	if l.View != "all" || l.Query != "" {
		t.Errorf("view=%q query=%q", l.View, l.Query)
	}
	if l.Groups != nil || l.Series != nil {
		t.Error("flat view should not group")
	}
}

func TestListPosts_ByYearAndQuery(t *testing.T) {
	svc := builtinService(t)
	q, _ := url.ParseQuery("view=by-year&filter=series&tags=bogus")
	l, err := svc.ListPosts(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if l.Total != 3 {
		t.Errorf("got %d series posts, want 3", l.Total)
	}
	if len(l.Groups) == 0 {
		t.Fatal("expected year groups")
	}
	if strings.Contains(l.Query, "bogus") {
		t.Errorf("invalid tag kept in query %q", l.Query)
	}
	if !strings.Contains(l.Query, "filter=series") || !strings.Contains(l.Query, "view=by-year") {
		t.Errorf("query = %q", l.Query)
	}
}

func TestListPosts_SeriesView(t *testing.T) {
	svc := builtinService(t)
	l, err := svc.ListPosts(context.Background(), url.Values{"view": {"series"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Series) != 1 || l.Series[0].TotalParts != 3 {
		t.Fatalf("series = %+v", l.Series)
	}
}

func TestGetPost_Series(t *testing.T) {
	svc := builtinService(t)
	d, err := svc.GetPost(context.Background(), "transformers-part-2-multihead-attention")
	if err != nil {
		t.Fatal(err)
	}
	if d.SeriesNavigation == nil {
		t.Fatal("expected series navigation")
	}
	if d.SeriesNavigation.Previous == nil || d.SeriesNavigation.Previous.Slug != "transformers-part-1-attention" {
		t.Errorf("previous = %+v", d.SeriesNavigation.Previous)
	}
	if d.SeriesNavigation.Next == nil || d.SeriesNavigation.Next.Slug != "transformers-part-3-architecture" {
		t.Errorf("next = %+v", d.SeriesNavigation.Next)
	}
	if d.Previous != nil || d.Next != nil {
		t.Error("series posts use series navigation only")
	}
	if len(d.Headings) == 0 {
		t.Error("expected headings")
	}
	for _, h := range d.Headings {
		if !strings.Contains(d.HTML, `id="`+h.Slug+`"`) {
			t.Errorf("anchor %q missing from html", h.Slug)
		}
	}
}

func TestGetPost_Standalone(t *testing.T) {
	dir := testutil.TestContent(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: 2024-01-01\n---\nfirst",
		"b.md": "---\ntitle: B\ndate: 2024-02-01\n---\nsecond",
		"c.md": "---\ntitle: C\ndate: 2024-03-01\n---\nthird",
	})
	repo := testutil.TestRepository(t, dir)
	svc := NewService(repo, testutil.SyncedDB(t, repo), nil, testutil.Quiet)

	d, err := svc.GetPost(context.Background(), "b")
	if err != nil {
		t.Fatal(err)
	}
	if d.Previous == nil || d.Previous.Slug != "a" {
		t.Errorf("previous = %+v", d.Previous)
	}
	if d.Next == nil || d.Next.Slug != "c" {
		t.Errorf("next = %+v", d.Next)
	}
	if d.SeriesNavigation != nil {
		t.Error("standalone post has no series navigation")
	}
}

func TestGetPost_NotFound(t *testing.T) {
	svc := builtinService(t)
	_, err := svc.GetPost(context.Background(), "nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	_, err = svc.Headings(context.Background(), "nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("headings err = %v, want ErrNotFound", err)
	}
}

func TestListPublications_Filter(t *testing.T) {
	svc := builtinService(t)
	q, _ := url.ParseQuery("tags=NLP&type=preprint&year=2025&view=by-type")
	l, err := svc.ListPublications(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if l.Total != 1 || l.Publications[0].ID != "cs.CL" {
		t.Fatalf("publications = %+v", l.Publications)
	}
	if len(l.ByType) != 1 || l.ByType[0].Label != "Preprint" {
		t.Errorf("by_type = %+v", l.ByType)
	}
}

func TestListPublications_ByYear(t *testing.T) {
	svc := builtinService(t)
	l, err := svc.ListPublications(context.Background(), url.Values{"view": {"by-year"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.ByYear) != 2 || l.ByYear[0].Label != "2025" {
		t.Errorf("by_year = %+v", l.ByYear)
	}
}

func TestListExperience_Skills(t *testing.T) {
	svc := builtinService(t)
	l, err := svc.ListExperience(context.Background(), url.Values{"search": {"fpga"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Experiences) != 1 || l.Experiences[0].ID != "exp5" {
		t.Errorf("experiences = %+v", l.Experiences)
	}
	if len(l.Projects) != 3 {
		t.Errorf("got %d projects", len(l.Projects))
	}
}

func TestSearch(t *testing.T) {
	svc := builtinService(t)
	if _, err := svc.Search(context.Background(), "  ", 0); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("empty query err = %v", err)
	}
	res, err := svc.Search(context.Background(), "attention", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) == 0 {
		t.Error("expected hits for attention")
	}
}

func TestReady(t *testing.T) {
	repo := testutil.TestRepository(t, "")
	svc := NewService(repo, testutil.TestDB(t), nil, testutil.Quiet)
	if err := svc.Ready(context.Background()); err == nil {
		t.Error("unsynced index should not be ready")
	}
	svc = builtinService(t)
	if err := svc.Ready(context.Background()); err != nil {
		t.Errorf("Ready: %v", err)
	}
}
