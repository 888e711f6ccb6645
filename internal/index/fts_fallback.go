//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; full-text search uses LIKE fallback on the posts.body column.
	return nil
}

func ftsUpsert(_ *sql.Tx, _ PostRow, _ string) error {
	// Body is already stored in the posts table; nothing extra to do.
	return nil
}

func ftsDelete(_ *sql.Tx, _ string) {}

// Search performs a LIKE-based search (fallback when FTS5 is not compiled in).
// Matches are ordered newest first.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	like := "%" + escapeLike(query) + "%"
	rows, err := db.conn.Query(`
		SELECT slug, title, date, substr(body, 1, 200)
		FROM posts
		WHERE title LIKE ?1 ESCAPE '\' OR body LIKE ?1 ESCAPE '\' OR tags LIKE ?1 ESCAPE '\'
		   OR excerpt LIKE ?1 ESCAPE '\' OR author LIKE ?1 ESCAPE '\'
		ORDER BY date DESC, slug ASC
		LIMIT ?2
	`, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Slug, &r.Title, &r.Date, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes query match literally inside a LIKE pattern.
func escapeLike(query string) string {
	return likeEscaper.Replace(strings.TrimSpace(query))
}
