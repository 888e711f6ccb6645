package filter

import (
	"strconv"

	"github.com/jinunyachhyon/folio/internal/catalog"
	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/models"
)

// Facet keys and values shared by the page controllers.
const (
	KeyTags   = "tags"
	KeyYear   = "year"
	KeyType   = "type"
	KeyFilter = "filter"
	KeySkills = "skills"

	All        = "all"
	Standalone = "standalone"
	InSeries   = "series"
)

// Display modes.
const (
	ViewAll    = "all"
	ViewByYear = "by-year"
	ViewByType = "by-type"
	ViewSeries = "series"
)

// BlogViews are the display modes of the blog listing.
var BlogViews = []string{ViewAll, ViewByYear, ViewByType, ViewSeries}

// PublicationViews are the display modes of the publication listing.
var PublicationViews = []string{ViewAll, ViewByYear, ViewByType}

// NewBlogController creates the controller of the blog listing. Tags and
// years are validated against the posts themselves.
func NewBlogController(posts []models.BlogPost) *Controller[models.BlogPost] {
	years := make([]string, 0)
	for _, y := range content.CollectYears(posts) {
		years = append(years, strconv.Itoa(y))
	}
	return New(Config[models.BlogPost]{
		Facets: []Facet{
			{Key: KeyTags, Multi: true, Valid: OneOf(content.CollectTags(posts)...)},
			{Key: KeyYear, Default: All, Valid: OneOf(years...)},
			{Key: KeyFilter, Default: All, Valid: OneOf(Standalone, InSeries)},
		},
		Views: BlogViews,
		Match: MatchPost,
	}, posts)
}

// MatchPost is the blog listing predicate. The search term matches the
// title, excerpt, author or any tag.
func MatchPost(p models.BlogPost, search string, applied Selection) bool {
	if search != "" {
		hit := ContainsFold(p.Title, search) || ContainsFold(p.Excerpt, search) || ContainsFold(p.Author, search)
		for _, t := range p.Tags {
			hit = hit || ContainsFold(t, search)
		}
		if !hit {
			return false
		}
	}
	if tags := applied.Values(KeyTags); len(tags) > 0 && !AnyOf(p.Tags, tags) {
		return false
	}
	if y := applied.Value(KeyYear); y != "" && strconv.Itoa(p.Year()) != y {
		return false
	}
	switch applied.Value(KeyFilter) {
	case Standalone:
		return p.Series == nil
	case InSeries:
		return p.Series != nil
	}
	return true
}

// NewPublicationController creates the controller of the publication listing.
func NewPublicationController(c *catalog.Catalog) *Controller[models.Publication] {
	years := make([]string, 0)
	for _, y := range c.Years() {
		years = append(years, strconv.Itoa(y))
	}
	types := make([]string, 0, len(models.PublicationTypes))
	for _, t := range models.PublicationTypes {
		types = append(types, string(t))
	}
	return New(Config[models.Publication]{
		Facets: []Facet{
			{Key: KeyTags, Multi: true, Valid: OneOf(c.Tags()...)},
			{Key: KeyType, Default: All, Valid: OneOf(types...)},
			{Key: KeyYear, Default: All, Valid: OneOf(years...)},
		},
		Views: PublicationViews,
		Match: MatchPublication,
	}, c.All())
}

// MatchPublication adapts catalog.Matches to the applied selection.
func MatchPublication(p models.Publication, search string, applied Selection) bool {
	return catalog.Matches(p, search, PublicationFilter(applied))
}

// PublicationFilter converts a selection into a catalog filter.
func PublicationFilter(s Selection) catalog.Filter {
	f := catalog.Filter{
		Tags: s.Values(KeyTags),
		Type: models.PublicationType(s.Value(KeyType)),
	}
	if y, err := strconv.Atoi(s.Value(KeyYear)); err == nil {
		f.Year = y
	}
	return f
}

// NewExperienceController creates the controller of the experience page.
// Skills are read from either "skills" or "tags".
func NewExperienceController() *Controller[models.Experience] {
	return New(Config[models.Experience]{
		Facets: []Facet{
			{Key: KeySkills, Aliases: []string{KeyTags}, Multi: true, Valid: OneOf(catalog.Skills()...)},
		},
		Match: func(e models.Experience, search string, applied Selection) bool {
			return catalog.MatchesExperience(e, search, applied.Values(KeySkills))
		},
	}, catalog.Experiences())
}
