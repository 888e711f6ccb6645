//go:build !sqlite_fts5

package index

import (
	"testing"
	"time"
)

func TestLikeSearch_WildcardsAreLiteral(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertPost(PostRow{Slug: "pct", Title: "Gains", Date: "2024-01-01", Checksum: "1", UpdatedAt: now}, "accuracy rose by 50% overall")
	_ = db.UpsertPost(PostRow{Slug: "plain", Title: "Other", Date: "2024-01-02", Checksum: "2", UpdatedAt: now}, "accuracy rose by 500 points")

	results, err := db.Search("50%", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Slug != "pct" {
		t.Errorf("results = %+v", results)
	}

	results, _ = db.Search("rose_by", 10)
	if len(results) != 0 {
		t.Errorf("underscore should not match any char: %+v", results)
	}
}

func TestLikeSearch_NewestFirst(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertPost(PostRow{Slug: "old", Date: "2022-01-01", Checksum: "1", UpdatedAt: now}, "shared term")
	_ = db.UpsertPost(PostRow{Slug: "new", Date: "2024-01-01", Checksum: "2", UpdatedAt: now}, "shared term")

	results, _ := db.Search("shared", 10)
	if len(results) != 2 || results[0].Slug != "new" {
		t.Errorf("results = %+v", results)
	}
}
