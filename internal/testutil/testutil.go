// Package testutil provides shared test helpers for setting up content
// directories, repositories and databases.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/index"
)

// Quiet is a logger that discards everything.
var Quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// Today is the fixed clock used for posts without a date.
func Today() time.Time {
	return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
}

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestContent creates a temporary content directory holding files,
// keyed by file name.
func TestContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// TestRepository opens a repository over dir. An empty dir yields the
// built-in posts.
func TestRepository(t *testing.T, dir string) *content.Repository {
	t.Helper()
	if dir == "" {
		dir = filepath.Join(t.TempDir(), "missing")
	}
	return content.OpenRepository(dir, nil, Quiet, Today)
}

// SyncedDB returns a database indexed from repo.
func SyncedDB(t *testing.T, repo *content.Repository) *index.DB {
	t.Helper()
	db := TestDB(t)
	if _, err := index.Sync(db, repo.ListPosts(), Quiet); err != nil {
		t.Fatal(err)
	}
	return db
}
