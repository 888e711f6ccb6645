// Package storage defines the content directory abstraction.
package storage

import "github.com/jinunyachhyon/folio/internal/models"

// Provider is the interface for read access to a content directory.
type Provider interface {
	// List returns metadata for every content file directly under dir
	// (relative to the root), sorted by path.
	List(dir string) ([]models.FileMeta, error)
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Root returns the absolute path of the content directory.
	Root() string
}
