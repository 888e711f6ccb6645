package index

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/jinunyachhyon/folio/internal/checksum"
	"github.com/jinunyachhyon/folio/internal/models"
)

// Change kinds reported by Sync and the watcher.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// Changes lists the slugs Sync touched, by kind.
type Changes struct {
	Created []string
	Updated []string
	Deleted []string
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Created)+len(c.Updated)+len(c.Deleted) == 0
}

// Sync brings the index up to date with posts:
//   - new/changed posts are upserted
//   - posts no longer present are deleted from the index
func Sync(db *DB, posts []models.BlogPost, logger *slog.Logger) (Changes, error) {
	var ch Changes

	checksums, err := db.AllChecksums()
	if err != nil {
		return ch, err
	}

	live := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		live[p.Slug] = struct{}{}

		row := Row(p)
		old, known := checksums[p.Slug]
		if known && old == row.Checksum {
			continue
		}
		if err := db.UpsertPost(row, p.Content); err != nil {
			logger.Warn("sync: index failed", slog.String("slug", p.Slug), slog.String("error", err.Error()))
			continue
		}
		logger.Debug("sync: indexed", slog.String("slug", p.Slug))
		if known {
			ch.Updated = append(ch.Updated, p.Slug)
		} else {
			ch.Created = append(ch.Created, p.Slug)
		}
	}

	// Remove stale entries.
	for slug := range checksums {
		if _, ok := live[slug]; ok {
			continue
		}
		if err := db.DeletePost(slug); err != nil {
			logger.Warn("sync: delete failed", slog.String("slug", slug), slog.String("error", err.Error()))
			continue
		}
		logger.Debug("sync: removed stale", slog.String("slug", slug))
		ch.Deleted = append(ch.Deleted, slug)
	}

	return ch, nil
}

// Row converts a post into its index row. The checksum covers every
// indexed field, so a metadata-only edit is detected too.
func Row(p models.BlogPost) PostRow {
	var series string
	if p.Series != nil {
		series = p.Series.Name
	}
	fields := []string{p.Title, p.Author, p.Excerpt, p.DateString(), series, p.Content}
	if p.Series != nil {
		fields = append(fields, strconv.Itoa(p.Series.Part), p.Series.Description)
	}
	fields = append(fields, p.Tags...)
	return PostRow{
		Slug:      p.Slug,
		Title:     p.Title,
		Author:    p.Author,
		Excerpt:   p.Excerpt,
		Date:      p.DateString(),
		Series:    series,
		Checksum:  checksum.Fields(fields...),
		Tags:      p.Tags,
		UpdatedAt: time.Now().UTC(),
	}
}
