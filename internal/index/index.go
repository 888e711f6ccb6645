package index

// PostIndex defines the interface for post indexing operations.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type PostIndex interface {
	UpsertPost(p PostRow, body string) error
	DeletePost(slug string) error
	GetChecksum(slug string) (string, error)
	AllChecksums() (map[string]string, error)
	Search(query string, limit int) ([]SearchResult, error)
	TagCounts() ([]TagCount, error)
	Count() (int, error)
	Close() error
}

// Verify *DB satisfies PostIndex at compile time.
var _ PostIndex = (*DB)(nil)
