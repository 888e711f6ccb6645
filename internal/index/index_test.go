package index

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func post(slug, title, body string, tags ...string) models.BlogPost {
	return models.BlogPost{
		Slug:    slug,
		Title:   title,
		Author:  "Ada",
		Date:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		Tags:    tags,
		Content: body,
	}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM posts`).Scan(&count); err != nil {
		t.Fatalf("posts table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM post_tags`).Scan(&count); err != nil {
		t.Fatalf("post_tags table missing: %v", err)
	}
}

func TestUpsertAndGetChecksum(t *testing.T) {
	db := testDB(t)
	row := PostRow{
		Slug:      "hello",
		Title:     "Hello World",
		Checksum:  "abc123",
		Tags:      []string{"go", "test"},
		UpdatedAt: time.Now(),
	}
	if err := db.UpsertPost(row, "This is a hello world post."); err != nil {
		t.Fatalf("UpsertPost: %v", err)
	}
	cs, err := db.GetChecksum("hello")
	if err != nil {
		t.Fatalf("GetChecksum: %v", err)
	}
	if cs != "abc123" {
		t.Errorf("checksum = %q, want %q", cs, "abc123")
	}
}

func TestTagCounts(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Slug: "a", Checksum: "1", Tags: []string{"AI", "NLP"}, UpdatedAt: time.Now()}, "body")
	_ = db.UpsertPost(PostRow{Slug: "b", Checksum: "2", Tags: []string{"AI"}, UpdatedAt: time.Now()}, "body")

	counts, err := db.TagCounts()
	if err != nil {
		t.Fatalf("TagCounts: %v", err)
	}
	if len(counts) != 2 || counts[0].Tag != "AI" || counts[0].Count != 2 || counts[1].Count != 1 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestDeletePost(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Slug: "del", Checksum: "x", Tags: []string{"gone"}, UpdatedAt: time.Now()}, "body")

	if err := db.DeletePost("del"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	cs, _ := db.GetChecksum("del")
	if cs != "" {
		t.Errorf("deleted post still has checksum %q", cs)
	}
	counts, _ := db.TagCounts()
	if len(counts) != 0 {
		t.Errorf("expected no tags after delete, got %+v", counts)
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertPost(PostRow{Slug: "up", Title: "Old", Checksum: "1", Tags: []string{"x"}, UpdatedAt: now}, "old body")
	_ = db.UpsertPost(PostRow{Slug: "up", Title: "New", Checksum: "2", Tags: []string{"y"}, UpdatedAt: now}, "new body")

	cs, _ := db.GetChecksum("up")
	if cs != "2" {
		t.Errorf("checksum = %q, want %q", cs, "2")
	}
	counts, _ := db.TagCounts()
	if len(counts) != 1 || counts[0].Tag != "y" {
		t.Errorf("old tags should be replaced: %+v", counts)
	}
}

func TestGetChecksum_NotFound(t *testing.T) {
	db := testDB(t)
	cs, err := db.GetChecksum("nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs != "" {
		t.Errorf("expected empty checksum, got %q", cs)
	}
}

func TestSearch_Basic(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertPost(PostRow{Slug: "s", Title: "Search Me", Checksum: "1", Tags: []string{}, UpdatedAt: time.Now()}, "uniqueword appears here")

	results, err := db.Search("uniqueword", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Slug != "s" {
		t.Errorf("search results = %+v, want 1 hit for s", results)
	}
}

func TestSync_CreatesUpdatesDeletes(t *testing.T) {
	db := testDB(t)
	ch, err := Sync(db, []models.BlogPost{post("a", "A", "alpha"), post("b", "B", "bravo")}, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if len(ch.Created) != 2 || len(ch.Updated) != 0 || len(ch.Deleted) != 0 {
		t.Fatalf("first sync = %+v", ch)
	}

	ch, _ = Sync(db, []models.BlogPost{post("a", "A", "alpha"), post("b", "B", "bravo")}, quiet)
	if !ch.Empty() {
		t.Errorf("unchanged sync = %+v", ch)
	}

	ch, _ = Sync(db, []models.BlogPost{post("a", "A2", "alpha")}, quiet)
	if len(ch.Updated) != 1 || ch.Updated[0] != "a" || len(ch.Deleted) != 1 || ch.Deleted[0] != "b" {
		t.Errorf("third sync = %+v", ch)
	}
	if n, _ := db.Count(); n != 1 {
		t.Errorf("count = %d", n)
	}
}

func TestRow_ChecksumCoversTags(t *testing.T) {
	a := Row(post("a", "A", "body", "x"))
	b := Row(post("a", "A", "body", "y"))
	if a.Checksum == b.Checksum {
		t.Error("tag change not reflected in checksum")
	}
}

func TestSync_BuiltinPostsSearchable(t *testing.T) {
	db := testDB(t)
	if _, err := Sync(db, content.BuiltinPosts(), quiet); err != nil {
		t.Fatal(err)
	}
	results, err := db.Search("attention", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Error("expected hits for attention")
	}
}
