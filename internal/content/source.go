// Package content resolves the authoritative list of blog posts from a
// content directory or, when none is usable, from the built-in posts.
package content

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/jinunyachhyon/folio/internal/models"
	"github.com/jinunyachhyon/folio/internal/parser"
	"github.com/jinunyachhyon/folio/internal/storage"
)

// Source names reported by Source.Name.
const (
	SourceDirectory = "directory"
	SourceFallback  = "fallback"
)

// Default field values for posts whose front matter omits them.
const (
	DefaultAuthor    = "Unknown Author"
	untitledTemplate = "Untitled (%s)"
)

// Source yields blog posts from one storage medium.
type Source interface {
	// Name identifies the medium ("directory" or "fallback").
	Name() string
	// List returns every post the source holds, in no particular order.
	List() []models.BlogPost
	// Get returns the post with the given slug.
	Get(slug string) (models.BlogPost, bool)
}

// Clock returns the current time. Posts without a date are dated today.
type Clock func() time.Time

// DirSource reads one post per file from a storage provider.
type DirSource struct {
	store  storage.Provider
	logger *slog.Logger
	now    Clock
}

// NewDirSource creates a DirSource over store.
func NewDirSource(store storage.Provider, logger *slog.Logger, now Clock) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &DirSource{store: store, logger: logger, now: now}
}

// Name implements Source.
func (d *DirSource) Name() string { return SourceDirectory }

// List implements Source. Unreadable files are skipped; a listing failure
// yields no posts. When two files share a stem the first in path order wins.
func (d *DirSource) List() []models.BlogPost {
	metas, err := d.store.List("")
	if err != nil {
		d.logger.Warn("content: list failed", slog.String("root", d.store.Root()), slog.String("error", err.Error()))
		return nil
	}
	seen := make(map[string]string, len(metas))
	posts := make([]models.BlogPost, 0, len(metas))
	for _, m := range metas {
		slug := SlugFromPath(m.Path)
		if first, dup := seen[slug]; dup {
			d.logger.Warn("content: duplicate slug skipped",
				slog.String("slug", slug),
				slog.String("path", m.Path),
				slog.String("kept", first))
			continue
		}
		data, err := d.store.Read(m.Path)
		if err != nil {
			d.logger.Warn("content: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		seen[slug] = m.Path
		posts = append(posts, d.build(slug, data))
	}
	return posts
}

// Get implements Source by scanning the listing, so a slug resolves to the
// same file List would have kept.
func (d *DirSource) Get(slug string) (models.BlogPost, bool) {
	metas, err := d.store.List("")
	if err != nil {
		d.logger.Warn("content: list failed", slog.String("root", d.store.Root()), slog.String("error", err.Error()))
		return models.BlogPost{}, false
	}
	for _, m := range metas {
		if SlugFromPath(m.Path) != slug {
			continue
		}
		data, err := d.store.Read(m.Path)
		if err != nil {
			d.logger.Warn("content: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			return models.BlogPost{}, false
		}
		return d.build(slug, data), true
	}
	return models.BlogPost{}, false
}

func (d *DirSource) build(slug string, data []byte) models.BlogPost {
	res := parser.Parse(data)
	if res.Frontmatter == nil {
		d.logger.Debug("content: no front matter, using defaults", slog.String("slug", slug))
	}
	return BuildPost(slug, res, d.now)
}

// BuildPost assembles a post from parsed file contents, filling every
// missing metadata field with its default.
func BuildPost(slug string, res *parser.Result, now Clock) models.BlogPost {
	meta := res.Meta
	p := models.BlogPost{
		Slug:        slug,
		Title:       meta.Title,
		Author:      meta.Author,
		Excerpt:     meta.Excerpt,
		Content:     res.Body,
		Date:        meta.Date,
		Tags:        meta.Tags,
		ReadingTime: parser.ReadingTime(res.Body),
		CoverImage:  meta.CoverImage,
		Series:      meta.Series,
	}
	if p.Title == "" {
		p.Title = fmt.Sprintf(untitledTemplate, slug)
	}
	if p.Date.IsZero() {
		y, m, d := now().UTC().Date()
		p.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Excerpt == "" {
		p.Excerpt = parser.Excerpt(res.Body)
	}
	return p
}

// SlugFromPath returns the file name stem of a content path.
func SlugFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// FallbackSource serves a fixed, fully populated list of posts verbatim.
type FallbackSource struct {
	posts []models.BlogPost
}

// NewFallbackSource creates a FallbackSource over posts. A nil slice
// selects the built-in posts.
func NewFallbackSource(posts []models.BlogPost) *FallbackSource {
	if posts == nil {
		posts = BuiltinPosts()
	}
	return &FallbackSource{posts: posts}
}

// Name implements Source.
func (f *FallbackSource) Name() string { return SourceFallback }

// List implements Source.
func (f *FallbackSource) List() []models.BlogPost {
	out := make([]models.BlogPost, len(f.posts))
	copy(out, f.posts)
	return out
}

// Get implements Source.
func (f *FallbackSource) Get(slug string) (models.BlogPost, bool) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// Probe selects the source to serve posts from: the content directory when
// it exists and yields at least one post, the built-in posts otherwise.
func Probe(dir string, exts []string, logger *slog.Logger, now Clock) Source {
	if logger == nil {
		logger = slog.Default()
	}
	if dir != "" {
		store, err := storage.NewFS(dir, exts...)
		if err != nil {
			logger.Info("content: directory unavailable, using built-in posts",
				slog.String("dir", dir), slog.String("error", err.Error()))
			return NewFallbackSource(nil)
		}
		src := NewDirSource(store, logger, now)
		if n := len(src.List()); n > 0 {
			logger.Info("content: serving posts from directory", slog.String("dir", store.Root()), slog.Int("posts", n))
			return src
		}
		logger.Info("content: directory has no posts, using built-in posts", slog.String("dir", store.Root()))
	}
	return NewFallbackSource(nil)
}
