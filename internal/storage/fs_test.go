package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func tempContent(t *testing.T, exts ...string) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir, exts...)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return dir, fs
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFS_MissingDir(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestNewFS_NotADir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.md", "x")
	if _, err := NewFS(filepath.Join(dir, "file.md")); err == nil {
		t.Error("expected error when root is a file")
	}
}

func TestRead(t *testing.T) {
	dir, s := tempContent(t)
	writeFile(t, dir, "note.md", "# Hello\n")
	got, err := s.Read("note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "# Hello\n" {
		t.Errorf("content = %q", got)
	}
}

func TestList_FiltersExtensionsAndSubdirs(t *testing.T) {
	dir, s := tempContent(t)
	writeFile(t, dir, "b.md", "b")
	writeFile(t, dir, "a.md", "a")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, ".hidden.md", "ignored")
	writeFile(t, dir, "sub/c.md", "nested is ignored")

	metas, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(metas), metas)
	}
	if metas[0].Path != "a.md" || metas[1].Path != "b.md" {
		t.Errorf("paths = %q, %q", metas[0].Path, metas[1].Path)
	}
	if metas[0].Checksum == "" {
		t.Error("expected checksum")
	}
}

func TestList_CustomExtensions(t *testing.T) {
	dir, s := tempContent(t, "markdown", ".MD")
	writeFile(t, dir, "a.markdown", "a")
	writeFile(t, dir, "b.md", "b")
	writeFile(t, dir, "c.mdx", "c")

	metas, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Errorf("expected 2 files, got %+v", metas)
	}
}

func TestSafePath_RejectsTraversal(t *testing.T) {
	_, s := tempContent(t)
	if _, err := s.Read("../etc/passwd"); err == nil {
		t.Error("expected traversal to be rejected")
	}
	if _, err := s.Read("/etc/passwd"); err == nil {
		t.Error("expected absolute path to be rejected")
	}
}
