//go:build sqlite_fts5

package index

import (
	"testing"
	"time"
)

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM posts_fts`).Scan(&count); err != nil {
		t.Fatalf("posts_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	row := PostRow{
		Slug:      "fts",
		Title:     "FTS Post",
		Date:      "2023-01-01",
		Checksum:  "f1",
		Tags:      []string{"search"},
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertPost(row, "Folio provides powerful full-text search capabilities."); err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}

	results, err := db.Search("powerful", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Slug != "fts" || results[0].Date != "2023-01-01" {
		t.Errorf("result = %+v", results[0])
	}
	if results[0].Snippet == "" {
		t.Error("expected non-empty snippet")
	}
}

func TestFTS5_DeleteRemovesFromFTS(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Slug: "gone", Checksum: "g", Tags: []string{}, UpdatedAt: time.Now()}, "vanishing content")
	_ = db.DeletePost("gone")

	results, _ := db.Search("vanishing", 10)
	for _, r := range results {
		if r.Slug == "gone" {
			t.Error("deleted post still in FTS index")
		}
	}
}

func TestFTS5_UpsertReplacesContent(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertPost(PostRow{Slug: "evo", Title: "Old", Checksum: "1", Tags: []string{}, UpdatedAt: now}, "original text")
	_ = db.UpsertPost(PostRow{Slug: "evo", Title: "New", Checksum: "2", Tags: []string{}, UpdatedAt: now}, "replacement text")

	results, _ := db.Search("original", 10)
	if len(results) != 0 {
		t.Error("old FTS content should be gone")
	}
	results, _ = db.Search("replacement", 10)
	if len(results) != 1 || results[0].Title != "New" {
		t.Errorf("FTS not updated: %+v", results)
	}
}

func TestFTS5_PunctuationAndPrefix(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Slug: "cpp", Title: "C++ notes", Checksum: "1", Tags: []string{}, UpdatedAt: time.Now()}, "templates and transformers")

	if _, err := db.Search(`c++ "unbalanced`, 10); err != nil {
		t.Fatalf("punctuation should not break the query: %v", err)
	}
	results, err := db.Search("transform", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("prefix match failed: %+v", results)
	}
}

func TestMatchQuery(t *testing.T) {
	if got := matchQuery(`multi head "attn`); got != `"multi" "head" """attn"*` {
		t.Errorf("matchQuery = %q", got)
	}
	if got := matchQuery("   "); got != "" {
		t.Errorf("blank = %q", got)
	}
}
