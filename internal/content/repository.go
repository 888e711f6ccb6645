package content

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/jinunyachhyon/folio/internal/models"
)

// Repository serves posts from a Source through a sorted, cached snapshot.
// The snapshot is rebuilt on Reload; readers never observe a partial load.
type Repository struct {
	mu     sync.RWMutex
	source Source
	posts  []models.BlogPost
	series []models.BlogSeries
	probe  func() Source
	logger *slog.Logger
}

// NewRepository builds a repository over a fixed source.
func NewRepository(src Source, logger *slog.Logger) *Repository {
	return newRepository(func() Source { return src }, logger)
}

// OpenRepository probes dir for posts and falls back to the built-in posts.
// Reload re-runs the probe, so a directory that appears later is picked up.
func OpenRepository(dir string, exts []string, logger *slog.Logger, now Clock) *Repository {
	return newRepository(func() Source { return Probe(dir, exts, logger, now) }, logger)
}

func newRepository(probe func() Source, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Repository{probe: probe, logger: logger}
	r.Reload()
	return r
}

// Reload re-selects the source and rebuilds the snapshot.
func (r *Repository) Reload() {
	src := r.probe()
	posts := src.List()
	SortPosts(posts)
	checkSeries(posts, r.logger)
	series := GroupSeries(posts)

	r.mu.Lock()
	r.source = src
	r.posts = posts
	r.series = series
	r.mu.Unlock()

	r.logger.Debug("content: snapshot loaded",
		slog.String("source", src.Name()),
		slog.Int("posts", len(posts)),
		slog.Int("series", len(series)))
}

// Source returns the name of the active source.
func (r *Repository) Source() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source.Name()
}

// ListPosts returns every post, newest first.
func (r *Repository) ListPosts() []models.BlogPost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BlogPost, len(r.posts))
	copy(out, r.posts)
	return out
}

// GetPost returns the post with the given slug from the active source.
func (r *Repository) GetPost(slug string) (models.BlogPost, bool) {
	r.mu.RLock()
	src := r.source
	r.mu.RUnlock()
	return src.Get(slug)
}

// ListSeries returns every series, ordered by the date of its first part,
// newest first.
func (r *Repository) ListSeries() []models.BlogSeries {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BlogSeries, len(r.series))
	copy(out, r.series)
	return out
}

// SeriesNavigation returns the neighbours of post within its series, or nil
// when the post belongs to no known series.
func (r *Repository) SeriesNavigation(post models.BlogPost) *models.SeriesNavigation {
	if post.Series == nil {
		return nil
	}
	for _, s := range r.ListSeries() {
		if s.Name != post.Series.Name {
			continue
		}
		idx := -1
		for i, p := range s.Posts {
			if p.Slug == post.Slug {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		nav := &models.SeriesNavigation{Series: s}
		if idx > 0 {
			prev := s.Posts[idx-1]
			nav.Previous = &prev
		}
		if idx < len(s.Posts)-1 {
			next := s.Posts[idx+1]
			nav.Next = &next
		}
		return nav
	}
	return nil
}

// Adjacent returns the chronological neighbours of post in the listing:
// older is published before it, newer after it.
func (r *Repository) Adjacent(post models.BlogPost) (older, newer *models.BlogPost) {
	posts := r.ListPosts()
	for i, p := range posts {
		if p.Slug != post.Slug {
			continue
		}
		if i+1 < len(posts) {
			o := posts[i+1]
			older = &o
		}
		if i > 0 {
			n := posts[i-1]
			newer = &n
		}
		break
	}
	return older, newer
}

// Tags returns every tag used by a post, deduplicated and sorted.
func (r *Repository) Tags() []string {
	return CollectTags(r.ListPosts())
}

// Years returns the distinct publication years of all posts, newest first.
func (r *Repository) Years() []int {
	return CollectYears(r.ListPosts())
}

// SortPosts orders posts newest first; posts on the same day are ordered by slug.
func SortPosts(posts []models.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// GroupSeries groups posts by series name. Within a series posts are
// ordered by part; series are ordered by the date of their first part,
// newest first.
func GroupSeries(posts []models.BlogPost) []models.BlogSeries {
	groups := make(map[string][]models.BlogPost)
	var order []string
	for _, p := range posts {
		if p.Series == nil {
			continue
		}
		name := p.Series.Name
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], p)
	}

	out := make([]models.BlogSeries, 0, len(order))
	for _, name := range order {
		members := groups[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Series.Part < members[j].Series.Part
		})
		desc := members[0].Series.Description
		if desc == "" {
			desc = fmt.Sprintf("A series of %d posts about %s.", len(members), strings.ToLower(name))
		}
		out = append(out, models.BlogSeries{
			Name:        name,
			Description: desc,
			Posts:       members,
			TotalParts:  len(members),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Posts[0].Date, out[j].Posts[0].Date
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CollectTags returns the sorted set of tags used across posts.
func CollectTags(posts []models.BlogPost) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CollectYears returns the distinct years of posts, newest first.
func CollectYears(posts []models.BlogPost) []int {
	set := make(map[int]struct{})
	for _, p := range posts {
		set[p.Year()] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// checkSeries logs series parts claimed by more than one post.
func checkSeries(posts []models.BlogPost, logger *slog.Logger) {
	type key struct {
		name string
		part int
	}
	seen := make(map[key]string)
	for _, p := range posts {
		if p.Series == nil {
			continue
		}
		k := key{p.Series.Name, p.Series.Part}
		if other, dup := seen[k]; dup {
			logger.Warn("content: duplicate series part",
				slog.String("series", k.name),
				slog.Int("part", k.part),
				slog.String("slug", p.Slug),
				slog.String("other", other))
			continue
		}
		seen[k] = p.Slug
	}
}
