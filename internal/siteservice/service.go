package siteservice

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jinunyachhyon/folio/internal/apperr"
	"github.com/jinunyachhyon/folio/internal/catalog"
	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/filter"
	"github.com/jinunyachhyon/folio/internal/index"
	"github.com/jinunyachhyon/folio/internal/models"
	"github.com/jinunyachhyon/folio/internal/parser"
	"github.com/jinunyachhyon/folio/internal/render"
)

// PostListItem is a lightweight post in a list response.
type PostListItem struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	Excerpt     string         `json:"excerpt"`
	Date        string         `json:"date"`
	DisplayDate string         `json:"display_date"`
	Tags        []string       `json:"tags"`
	ReadingTime string         `json:"reading_time"`
	CoverImage  string         `json:"cover_image,omitempty"`
	Series      *models.Series `json:"series,omitempty"`
}

// PostGroup is a labelled group of list items.
type PostGroup struct {
	Label string         `json:"label"`
	Posts []PostListItem `json:"posts"`
}

// SeriesItem is a series with its parts in order.
type SeriesItem struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	TotalParts  int            `json:"total_parts"`
	Posts       []PostListItem `json:"posts"`
}

// PostListing is the blog listing for one URL query.
type PostListing struct {
	Posts   []PostListItem   `json:"posts"`
	Groups  []PostGroup      `json:"groups,omitempty"`
	Series  []SeriesItem     `json:"series,omitempty"`
	Total   int              `json:"total"`
	View    string           `json:"view"`
	Search  string           `json:"search"`
	Applied filter.Selection `json:"applied"`
	Tags    []string         `json:"tags"`
	Years   []int            `json:"years"`
	Query   string           `json:"query"`
	Source  string           `json:"source"`
}

// SeriesNavigation places a post inside its series.
type SeriesNavigation struct {
	Series   SeriesItem    `json:"series"`
	Previous *PostListItem `json:"previous,omitempty"`
	Next     *PostListItem `json:"next,omitempty"`
}

// PostDetail is the full representation of a post.
type PostDetail struct {
	PostListItem
	Content          string            `json:"content"`
	HTML             string            `json:"html"`
	Headings         []models.Heading  `json:"headings"`
	SeriesNavigation *SeriesNavigation `json:"series_navigation,omitempty"`
	Previous         *PostListItem     `json:"previous,omitempty"`
	Next             *PostListItem     `json:"next,omitempty"`
}

// PublicationListing is the publication listing for one URL query.
type PublicationListing struct {
	Publications []models.Publication `json:"publications"`
	ByYear       []PublicationGroup   `json:"by_year,omitempty"`
	ByType       []PublicationGroup   `json:"by_type,omitempty"`
	Total        int                  `json:"total"`
	View         string               `json:"view"`
	Search       string               `json:"search"`
	Applied      filter.Selection     `json:"applied"`
	Tags         []string             `json:"tags"`
	Years        []int                `json:"years"`
	Query        string               `json:"query"`
}

// PublicationGroup is a labelled group of publications.
type PublicationGroup struct {
	Label        string               `json:"label"`
	Publications []models.Publication `json:"publications"`
}

// ExperienceListing is the experience page for one URL query.
type ExperienceListing struct {
	Experiences []models.Experience `json:"experiences"`
	Projects    []models.Project    `json:"projects"`
	Skills      []string            `json:"skills"`
	Search      string              `json:"search"`
	Applied     filter.Selection    `json:"applied"`
	Query       string              `json:"query"`
}

// Service answers read queries over the content repository, the search
// index and the publication catalog.
type Service struct {
	repo    *content.Repository
	db      index.PostIndex
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService creates a new site service. A nil catalog means catalog.Default().
func NewService(repo *content.Repository, db index.PostIndex, cat *catalog.Catalog, logger *slog.Logger) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, db: db, catalog: cat, logger: logger}
}

// Catalog returns the publication catalog the service reads from.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// ListPosts hydrates a blog controller from q and returns the visible posts
// shaped for the requested view.
func (s *Service) ListPosts(_ context.Context, q url.Values) (*PostListing, error) {
	posts := s.repo.ListPosts()
	c := filter.NewBlogController(posts)
	c.Hydrate(q)
	visible := c.Visible()

	out := &PostListing{
		Posts:   listItems(visible),
		Total:   len(visible),
		View:    c.View(),
		Search:  c.Search(),
		Applied: c.AppliedSelection(),
		Tags:    nonNilSlice(content.CollectTags(posts)),
		Years:   nonNilSlice(content.CollectYears(posts)),
		Query:   c.Encode(),
		Source:  s.repo.Source(),
	}
	switch c.View() {
	case filter.ViewByYear:
		out.Groups = groups(filter.GroupPostsByYear(visible))
	case filter.ViewByType:
		out.Groups = groups(filter.GroupPostsByType(visible))
	case filter.ViewSeries:
		out.Series = visibleSeries(s.repo.ListSeries(), visible)
	}
	return out, nil
}

// GetPost returns a post with its rendered body, table of contents and
// navigation.
func (s *Service) GetPost(_ context.Context, slug string) (*PostDetail, error) {
	post, ok := s.repo.GetPost(slug)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	html, err := render.ToHTML(post.Content)
	if err != nil {
		return nil, fmt.Errorf("siteservice: get post %s: %w", slug, err)
	}
	d := &PostDetail{
		PostListItem: listItem(post),
		Content:      post.Content,
		HTML:         html,
		Headings:     nonNilSlice(parser.ExtractHeadings(post.Content)),
	}
	if nav := s.repo.SeriesNavigation(post); nav != nil {
		d.SeriesNavigation = &SeriesNavigation{
			Series:   seriesItem(nav.Series),
			Previous: listItemPtr(nav.Previous),
			Next:     listItemPtr(nav.Next),
		}
		return d, nil
	}
	older, newer := s.repo.Adjacent(post)
	d.Previous = listItemPtr(older)
	d.Next = listItemPtr(newer)
	return d, nil
}

// Headings returns the table of contents of a post.
func (s *Service) Headings(_ context.Context, slug string) ([]models.Heading, error) {
	post, ok := s.repo.GetPost(slug)
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return nonNilSlice(parser.ExtractHeadings(post.Content)), nil
}

// ListSeries returns every series with its parts.
func (s *Service) ListSeries(_ context.Context) ([]SeriesItem, error) {
	all := s.repo.ListSeries()
	out := make([]SeriesItem, len(all))
	for i, bs := range all {
		out[i] = seriesItem(bs)
	}
	return out, nil
}

// ListPublications hydrates a publication controller from q.
func (s *Service) ListPublications(_ context.Context, q url.Values) (*PublicationListing, error) {
	c := filter.NewPublicationController(s.catalog)
	c.Hydrate(q)
	visible := c.Visible()

	out := &PublicationListing{
		Publications: nonNilSlice(visible),
		Total:        len(visible),
		View:         c.View(),
		Search:       c.Search(),
		Applied:      c.AppliedSelection(),
		Tags:         nonNilSlice(s.catalog.Tags()),
		Years:        nonNilSlice(s.catalog.Years()),
		Query:        c.Encode(),
	}
	switch c.View() {
	case filter.ViewByYear:
		byYear := catalog.GroupByYear(visible)
		for _, y := range s.catalog.Years() {
			if pubs := byYear[y]; len(pubs) > 0 {
				out.ByYear = append(out.ByYear, PublicationGroup{Label: fmt.Sprint(y), Publications: pubs})
			}
		}
	case filter.ViewByType:
		byType := catalog.GroupByType(visible)
		for _, t := range models.PublicationTypes {
			if pubs := byType[t]; len(pubs) > 0 {
				out.ByType = append(out.ByType, PublicationGroup{Label: t.Label(), Publications: pubs})
			}
		}
	}
	return out, nil
}

// PublicationTags returns every tag used by a publication.
func (s *Service) PublicationTags(_ context.Context) []string {
	return nonNilSlice(s.catalog.Tags())
}

// ListExperience hydrates an experience controller from q.
func (s *Service) ListExperience(_ context.Context, q url.Values) (*ExperienceListing, error) {
	c := filter.NewExperienceController()
	c.Hydrate(q)
	return &ExperienceListing{
		Experiences: nonNilSlice(c.Visible()),
		Projects:    catalog.Projects(),
		Skills:      catalog.Skills(),
		Search:      c.Search(),
		Applied:     c.AppliedSelection(),
		Query:       c.Encode(),
	}, nil
}

// Search runs a full-text query over the post index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", apperr.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = index.DefaultSearchLimit
	}
	res, err := s.db.Search(query, limit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(res), nil
}

// TagCounts returns tag usage across indexed posts.
func (s *Service) TagCounts(_ context.Context) ([]index.TagCount, error) {
	tc, err := s.db.TagCounts()
	if err != nil {
		return nil, err
	}
	return nonNilSlice(tc), nil
}

// Ready reports whether the index is reachable and has been populated.
func (s *Service) Ready(_ context.Context) error {
	n, err := s.db.Count()
	if err != nil {
		return err
	}
	if n == 0 && len(s.repo.ListPosts()) > 0 {
		return fmt.Errorf("siteservice: index not synced")
	}
	return nil
}

// Posts returns every post, newest first.
func (s *Service) Posts(_ context.Context) []models.BlogPost {
	return s.repo.ListPosts()
}

func listItem(p models.BlogPost) PostListItem {
	return PostListItem{
		Slug:        p.Slug,
		Title:       p.Title,
		Author:      p.Author,
		Excerpt:     p.Excerpt,
		Date:        p.DateString(),
		DisplayDate: p.DisplayDate(),
		Tags:        nonNilSlice(p.Tags),
		ReadingTime: p.ReadingTime,
		CoverImage:  p.CoverImage,
		Series:      p.Series,
	}
}

func listItemPtr(p *models.BlogPost) *PostListItem {
	if p == nil {
		return nil
	}
	it := listItem(*p)
	return &it
}

func listItems(posts []models.BlogPost) []PostListItem {
	out := make([]PostListItem, len(posts))
	for i, p := range posts {
		out[i] = listItem(p)
	}
	return out
}

func groups(in []filter.PostGroup) []PostGroup {
	out := make([]PostGroup, len(in))
	for i, g := range in {
		out[i] = PostGroup{Label: g.Label, Posts: listItems(g.Posts)}
	}
	return out
}

func seriesItem(bs models.BlogSeries) SeriesItem {
	return SeriesItem{
		Name:        bs.Name,
		Description: bs.Description,
		TotalParts:  bs.TotalParts,
		Posts:       listItems(bs.Posts),
	}
}

// visibleSeries keeps the series with at least one visible part.
func visibleSeries(all []models.BlogSeries, visible []models.BlogPost) []SeriesItem {
	seen := make(map[string]struct{})
	for _, p := range visible {
		if p.Series != nil {
			seen[p.Series.Name] = struct{}{}
		}
	}
	var out []SeriesItem
	for _, bs := range all {
		if _, ok := seen[bs.Name]; ok {
			out = append(out, seriesItem(bs))
		}
	}
	return out
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
