package index

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 20

// PostRow represents a row in the posts table.
type PostRow struct {
	Slug      string
	Title     string
	Author    string
	Excerpt   string
	Date      string
	Series    string
	Checksum  string
	Tags      []string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
}

// TagCount is the number of indexed posts carrying a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// UpsertPost inserts or replaces a post, its FTS entry and its tags within a transaction.
func (db *DB) UpsertPost(p PostRow, body string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	tagsJSON, _ := json.Marshal(p.Tags)

	// Upsert posts table (includes body for fallback search).
	_, err = tx.Exec(`
		INSERT INTO posts (slug, title, author, excerpt, date, series, checksum, tags, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title      = excluded.title,
			author     = excluded.author,
			excerpt    = excluded.excerpt,
			date       = excluded.date,
			series     = excluded.series,
			checksum   = excluded.checksum,
			tags       = excluded.tags,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, p.Slug, p.Title, p.Author, p.Excerpt, p.Date, p.Series, p.Checksum, string(tagsJSON), body, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert post: %w", err)
	}

	// FTS upsert (no-op when FTS5 tag is absent).
	if err := ftsUpsert(tx, p, body); err != nil {
		return err
	}

	// Replace tags: delete old then bulk insert.
	_, _ = tx.Exec(`DELETE FROM post_tags WHERE slug = ?`, p.Slug)
	if len(p.Tags) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO post_tags (slug, tag) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare tag insert: %w", err)
		}
		defer stmt.Close()
		for _, tag := range p.Tags {
			if _, err := stmt.Exec(p.Slug, tag); err != nil {
				return fmt.Errorf("index: insert tag: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeletePost removes a post, its FTS entry and its tags.
func (db *DB) DeletePost(slug string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, slug)
	_, _ = tx.Exec(`DELETE FROM post_tags WHERE slug = ?`, slug)
	_, _ = tx.Exec(`DELETE FROM posts WHERE slug = ?`, slug)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a post, or empty string if not found.
func (db *DB) GetChecksum(slug string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM posts WHERE slug = ?`, slug).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllChecksums returns the stored checksum of every indexed post, keyed by slug.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT slug, checksum FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var slug, cs string
		if err := rows.Scan(&slug, &cs); err != nil {
			return nil, err
		}
		out[slug] = cs
	}
	return out, rows.Err()
}

// TagCounts returns every indexed tag with the number of posts carrying it,
// most used first.
func (db *DB) TagCounts() ([]TagCount, error) {
	rows, err := db.conn.Query(`
		SELECT tag, count(*) AS n
		FROM post_tags
		GROUP BY tag
		ORDER BY n DESC, tag ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("index: tag counts: %w", err)
	}
	defer rows.Close()

	var out []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// Count returns the number of indexed posts.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}

// Ping checks the database connection.
func (db *DB) Ping() error {
	return db.conn.Ping()
}
