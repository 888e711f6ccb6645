// Package catalog holds the static publication and experience records and
// the queries the portfolio pages run over them.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jinunyachhyon/folio/internal/models"
)

// Filter narrows a publication search. Zero fields do not filter.
type Filter struct {
	Tags []string
	Type models.PublicationType
	Year int
}

// Catalog is an immutable, validated list of publications.
type Catalog struct {
	pubs []models.Publication
}

// New validates pubs and returns a catalog over them in declaration order.
func New(pubs []models.Publication) (*Catalog, error) {
	seen := make(map[string]struct{}, len(pubs))
	for i := range pubs {
		if err := validatePublication(&pubs[i]); err != nil {
			return nil, fmt.Errorf("catalog: publication %d (%q): %w", i, pubs[i].ID, err)
		}
		if _, dup := seen[pubs[i].ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate publication id %q", pubs[i].ID)
		}
		seen[pubs[i].ID] = struct{}{}
	}
	out := make([]models.Publication, len(pubs))
	copy(out, pubs)
	return &Catalog{pubs: out}, nil
}

func validatePublication(p *models.Publication) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Year, validation.Required, validation.Min(1)),
		validation.Field(&p.PublicationType, validation.Required,
			validation.By(func(v interface{}) error {
				if t, _ := v.(models.PublicationType); !t.Valid() {
					return validation.NewError("validation_publication_type", "must be journal, conference or preprint")
				}
				return nil
			})),
	)
}

var defaultCatalog = mustNew(builtinPublications)

func mustNew(pubs []models.Publication) *Catalog {
	c, err := New(pubs)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// All returns every publication in declaration order.
func (c *Catalog) All() []models.Publication {
	out := make([]models.Publication, len(c.pubs))
	copy(out, c.pubs)
	return out
}

// Len returns the number of publications.
func (c *Catalog) Len() int { return len(c.pubs) }

// Get returns the publication with the given id.
func (c *Catalog) Get(id string) (models.Publication, bool) {
	for _, p := range c.pubs {
		if p.ID == id {
			return p, true
		}
	}
	return models.Publication{}, false
}

// ByYear groups publications by year, declaration order within a year.
func (c *Catalog) ByYear() map[int][]models.Publication {
	return GroupByYear(c.pubs)
}

// ByType groups publications by type, declaration order within a type.
func (c *Catalog) ByType() map[models.PublicationType][]models.Publication {
	return GroupByType(c.pubs)
}

// Years returns the distinct publication years, newest first.
func (c *Catalog) Years() []int {
	set := make(map[int]struct{})
	for _, p := range c.pubs {
		set[p.Year] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for y := range set {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Tags returns every tag used by a publication, deduplicated and sorted.
func (c *Catalog) Tags() []string {
	set := make(map[string]struct{})
	for _, p := range c.pubs {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Search returns the publications matching query and f, in declaration order.
func (c *Catalog) Search(query string, f Filter) []models.Publication {
	out := make([]models.Publication, 0, len(c.pubs))
	for _, p := range c.pubs {
		if Matches(p, query, f) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p satisfies every criterion: query is empty or a
// case-insensitive substring of the title, authors, abstract or venue; any
// of f.Tags is present; the type and year equal f's when set.
func Matches(p models.Publication, query string, f Filter) bool {
	if q := strings.ToLower(query); q != "" {
		if !containsFold(p.Title, q) && !containsFold(p.Authors, q) &&
			!containsFold(p.Abstract, q) && !containsFold(p.Conference, q) {
			return false
		}
	}
	if len(f.Tags) > 0 && !anyIn(p.Tags, f.Tags) {
		return false
	}
	if f.Type != "" && p.PublicationType != f.Type {
		return false
	}
	if f.Year != 0 && p.Year != f.Year {
		return false
	}
	return true
}

// GroupByYear groups pubs by year, preserving their relative order.
func GroupByYear(pubs []models.Publication) map[int][]models.Publication {
	out := make(map[int][]models.Publication)
	for _, p := range pubs {
		out[p.Year] = append(out[p.Year], p)
	}
	return out
}

// GroupByType groups pubs by type, preserving their relative order.
func GroupByType(pubs []models.Publication) map[models.PublicationType][]models.Publication {
	out := make(map[models.PublicationType][]models.Publication)
	for _, p := range pubs {
		out[p.PublicationType] = append(out[p.PublicationType], p)
	}
	return out
}

// containsFold reports whether lowered needle occurs in s, ignoring case.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func anyIn(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
