//go:build sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS posts_fts USING fts5(
			slug UNINDEXED,
			title,
			excerpt,
			body,
			tags,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

func ftsUpsert(tx *sql.Tx, p PostRow, body string) error {
	_, _ = tx.Exec(`DELETE FROM posts_fts WHERE slug = ?`, p.Slug)
	_, err := tx.Exec(`INSERT INTO posts_fts (slug, title, excerpt, body, tags) VALUES (?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Excerpt, body, strings.Join(p.Tags, " "))
	if err != nil {
		return fmt.Errorf("index: upsert fts: %w", err)
	}
	return nil
}

func ftsDelete(tx *sql.Tx, slug string) {
	_, _ = tx.Exec(`DELETE FROM posts_fts WHERE slug = ?`, slug)
}

// Search performs an FTS5 full-text search and returns matching results with snippets.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	rows, err := db.conn.Query(`
		SELECT posts_fts.slug,
		       posts_fts.title,
		       posts.date,
		       snippet(posts_fts, 3, '<b>', '</b>', '...', 64)
		FROM posts_fts
		JOIN posts ON posts.slug = posts_fts.slug
		WHERE posts_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, matchQuery(query), limit)
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

// matchQuery turns free text into an FTS5 query: every word is quoted so
// operators and punctuation in user input are taken literally, and the last
// word matches as a prefix.
func matchQuery(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		words[i] = `"` + strings.ReplaceAll(w, `"`, `""`) + `"`
	}
	if n := len(words); n > 0 {
		words[n-1] += "*"
	}
	return strings.Join(words, " ")
}
