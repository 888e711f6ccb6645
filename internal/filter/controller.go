// Package filter reconciles the pending and applied filter selections of a
// listing page with its URL query string and the records it shows.
//
// A Controller moves through four states. It starts Uninitialized, reads the
// URL once on Hydrate, and then alternates between PendingEdit (facet
// controls changed but not committed) and Applied. Free-text search and the
// view mode bypass the pending stage and take effect immediately.
package filter

import (
	"net/url"
	"strings"
)

// State is the lifecycle position of a Controller.
type State int

// Controller states.
const (
	Uninitialized State = iota
	Hydrated
	PendingEdit
	Applied
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hydrated:
		return "hydrated"
	case PendingEdit:
		return "pending"
	case Applied:
		return "applied"
	}
	return "unknown"
}

// Reserved query parameters.
const (
	ParamSearch = "search"
	ParamView   = "view"
)

// Separator joins the values of a multi-valued facet in the URL. Values are
// not escaped, so a value containing a comma cannot round-trip.
const Separator = ","

// Facet describes one filter dimension of a page.
type Facet struct {
	// Key is the query parameter the facet is written to.
	Key string
	// Aliases are additional parameters read on Hydrate when Key is absent.
	Aliases []string
	// Multi facets hold a set of values combined with OR; single facets hold
	// at most one.
	Multi bool
	// Default is the value of a single facet that means "unfiltered". It is
	// never stored or written to the URL.
	Default string
	// Valid reports whether a value belongs to the facet's universe. Nil
	// accepts everything.
	Valid func(string) bool
	// Equal compares pending and applied values. Nil compares as sets.
	Equal func(a, b []string) bool
}

func (f *Facet) valid(v string) bool {
	if v == "" || (!f.Multi && v == f.Default) {
		return false
	}
	return f.Valid == nil || f.Valid(v)
}

func (f *Facet) equal(a, b []string) bool {
	if f.Equal != nil {
		return f.Equal(a, b)
	}
	return SameSet(a, b)
}

// MatchFunc reports whether a record is visible under the search term and
// the applied selection.
type MatchFunc[T any] func(rec T, search string, applied Selection) bool

// Config parameterises a Controller.
type Config[T any] struct {
	Facets []Facet
	// Views lists the accepted display modes; the first is the default.
	Views []string
	Match MatchFunc[T]
}

// Controller holds the filter state of one page. It is not safe for
// concurrent use; each page instance owns its controller.
type Controller[T any] struct {
	facets  []Facet
	views   []string
	match   MatchFunc[T]
	records []T

	state     State
	search    string
	view      string
	pending   Selection
	applied   Selection
	panelOpen bool

	visible      []T
	visibleValid bool

	onURLChange func(url.Values)
}

// New creates a controller over records.
func New[T any](cfg Config[T], records []T) *Controller[T] {
	c := &Controller[T]{
		facets:  cfg.Facets,
		views:   cfg.Views,
		match:   cfg.Match,
		records: records,
		pending: Selection{},
		applied: Selection{},
	}
	c.view = c.defaultView()
	return c
}

// OnURLChange registers fn to receive the query string whenever a
// transition rewrites the URL.
func (c *Controller[T]) OnURLChange(fn func(url.Values)) {
	c.onURLChange = fn
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State { return c.state }

// Hydrate seeds the search term, view and both selections from q. It runs
// once; later calls return false and change nothing. Unknown parameters and
// values outside a facet's universe are dropped silently.
func (c *Controller[T]) Hydrate(q url.Values) bool {
	if c.state != Uninitialized {
		return false
	}
	c.search = q.Get(ParamSearch)
	if v := q.Get(ParamView); c.validView(v) {
		c.view = v
	}
	sel := Selection{}
	for i := range c.facets {
		f := &c.facets[i]
		raw := lookup(q, f)
		if raw == "" {
			continue
		}
		if !f.Multi {
			if f.valid(raw) {
				sel[f.Key] = []string{raw}
			}
			continue
		}
		var vals []string
		for _, v := range strings.Split(raw, Separator) {
			if f.valid(v) && !contains(vals, v) {
				vals = append(vals, v)
			}
		}
		if len(vals) > 0 {
			sel[f.Key] = vals
		}
	}
	c.applied = sel
	c.pending = sel.Clone()
	c.state = Hydrated
	c.invalidate()
	return true
}

func lookup(q url.Values, f *Facet) string {
	if v := q.Get(f.Key); v != "" {
		return v
	}
	for _, a := range f.Aliases {
		if v := q.Get(a); v != "" {
			return v
		}
	}
	return ""
}

// Search returns the current search term.
func (c *Controller[T]) Search() string { return c.search }

// SetSearch replaces the search term. It takes effect immediately.
func (c *Controller[T]) SetSearch(term string) {
	c.settle()
	if term == c.search {
		return
	}
	c.search = term
	c.invalidate()
	c.publish()
}

// View returns the current display mode.
func (c *Controller[T]) View() string { return c.view }

// Views returns the accepted display modes.
func (c *Controller[T]) Views() []string {
	return append([]string(nil), c.views...)
}

// SetView switches the display mode. Unknown views are ignored.
func (c *Controller[T]) SetView(view string) bool {
	c.settle()
	if !c.validView(view) {
		return false
	}
	if view != c.view {
		c.view = view
		c.publish()
	}
	return true
}

// Toggle adds v to or removes it from the pending values of a multi facet.
// It reports whether the pending selection changed.
func (c *Controller[T]) Toggle(key, v string) bool {
	f := c.facet(key)
	if f == nil || !f.Multi {
		return false
	}
	c.settle()
	cur := c.pending[key]
	if i := index(cur, v); i >= 0 {
		next := append(append([]string(nil), cur[:i]...), cur[i+1:]...)
		c.setPending(key, next)
		return true
	}
	if !f.valid(v) {
		return false
	}
	c.setPending(key, append(append([]string(nil), cur...), v))
	return true
}

// Select sets the pending value of a single facet. The facet's default or
// "" unsets it. Invalid values are ignored.
func (c *Controller[T]) Select(key, v string) bool {
	f := c.facet(key)
	if f == nil || f.Multi {
		return false
	}
	c.settle()
	if v == "" || v == f.Default {
		c.setPending(key, nil)
		return true
	}
	if !f.valid(v) {
		return false
	}
	c.setPending(key, []string{v})
	return true
}

func (c *Controller[T]) setPending(key string, vals []string) {
	if len(vals) == 0 {
		delete(c.pending, key)
	} else {
		c.pending[key] = vals
	}
	c.state = PendingEdit
}

// Apply commits the pending selection, closes the filter panel and
// rewrites the URL.
func (c *Controller[T]) Apply() {
	c.applied = c.pending.Clone()
	c.panelOpen = false
	c.state = Applied
	c.invalidate()
	c.publish()
}

// Clear resets the search term and both selections, closes the filter
// panel and rewrites the URL. The view is kept.
func (c *Controller[T]) Clear() {
	c.search = ""
	c.pending = Selection{}
	c.applied = Selection{}
	c.panelOpen = false
	c.state = Applied
	c.invalidate()
	c.publish()
}

// Pending returns the pending values of key.
func (c *Controller[T]) Pending(key string) []string {
	return append([]string(nil), c.pending[key]...)
}

// Applied returns the applied values of key.
func (c *Controller[T]) Applied(key string) []string {
	return append([]string(nil), c.applied[key]...)
}

// AppliedSelection returns a copy of the applied selection.
func (c *Controller[T]) AppliedSelection() Selection { return c.applied.Clone() }

// HasPendingChanges reports whether the pending selection differs from the
// applied one.
func (c *Controller[T]) HasPendingChanges() bool {
	for i := range c.facets {
		f := &c.facets[i]
		if !f.equal(c.pending[f.Key], c.applied[f.Key]) {
			return true
		}
	}
	return false
}

// HasAppliedFilters reports whether any facet is applied.
func (c *Controller[T]) HasAppliedFilters() bool {
	return c.AppliedCount() > 0
}

// AppliedCount returns the number of applied values across all facets.
func (c *Controller[T]) AppliedCount() int {
	n := 0
	for i := range c.facets {
		n += len(c.applied[c.facets[i].Key])
	}
	return n
}

// PanelOpen reports whether the filter panel is expanded.
func (c *Controller[T]) PanelOpen() bool { return c.panelOpen }

// OpenPanel expands the filter panel.
func (c *Controller[T]) OpenPanel() { c.panelOpen = true }

// ClosePanel collapses the filter panel without applying.
func (c *Controller[T]) ClosePanel() { c.panelOpen = false }

// TogglePanel flips the filter panel.
func (c *Controller[T]) TogglePanel() { c.panelOpen = !c.panelOpen }

// Records returns the full record list.
func (c *Controller[T]) Records() []T { return c.records }

// SetRecords replaces the record list.
func (c *Controller[T]) SetRecords(records []T) {
	c.records = records
	c.invalidate()
}

// Visible returns the records matching the search term and the applied
// selection, in record order. The result is recomputed only after an input
// changes.
func (c *Controller[T]) Visible() []T {
	if !c.visibleValid {
		out := make([]T, 0, len(c.records))
		for _, r := range c.records {
			if c.match == nil || c.match(r, c.search, c.applied) {
				out = append(out, r)
			}
		}
		c.visible = out
		c.visibleValid = true
	}
	return append([]T(nil), c.visible...)
}

// Query returns the URL parameters describing the search term, applied
// selection and view. Default values are omitted.
func (c *Controller[T]) Query() url.Values {
	q := url.Values{}
	if c.search != "" {
		q.Set(ParamSearch, c.search)
	}
	for i := range c.facets {
		f := &c.facets[i]
		if vals := c.applied[f.Key]; len(vals) > 0 {
			q.Set(f.Key, strings.Join(vals, Separator))
		}
	}
	if c.view != c.defaultView() {
		q.Set(ParamView, c.view)
	}
	return q
}

// Encode returns Query in URL-encoded form.
func (c *Controller[T]) Encode() string {
	return c.Query().Encode()
}

func (c *Controller[T]) publish() {
	if c.onURLChange != nil {
		c.onURLChange(c.Query())
	}
}

func (c *Controller[T]) invalidate() {
	c.visibleValid = false
	c.visible = nil
}

// settle marks the controller as hydrated when a transition arrives first.
func (c *Controller[T]) settle() {
	if c.state == Uninitialized {
		c.state = Hydrated
	}
}

func (c *Controller[T]) facet(key string) *Facet {
	for i := range c.facets {
		if c.facets[i].Key == key {
			return &c.facets[i]
		}
	}
	return nil
}

func (c *Controller[T]) defaultView() string {
	if len(c.views) == 0 {
		return ""
	}
	return c.views[0]
}

func (c *Controller[T]) validView(v string) bool {
	return v != "" && contains(c.views, v)
}

func contains(vals []string, v string) bool { return index(vals, v) >= 0 }

func index(vals []string, v string) int {
	for i, x := range vals {
		if x == v {
			return i
		}
	}
	return -1
}
