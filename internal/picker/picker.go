// Package picker holds the state of the icon selection flow: a search term,
// the names matching it and the chosen icon. It has no UI of its own.
package picker

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/sparknest-admin/internal/icons"
)

// Status tells whether the current search has results.
type Status int

const (
	StatusMatches Status = iota
	StatusNoMatches
)

// Catalog is the part of [icons.Catalog] the picker needs.
type Catalog interface {
	ListNames() []icons.IconName
	Has(name icons.IconName) bool
}

// Picker is created by Open and discarded when the caller closes it. It is
// not safe for concurrent use.
type Picker struct {
	catalog  Catalog
	all      []icons.IconName
	onSelect func(icons.IconName)

	searchTerm string
	filtered   []icons.IconName
	selected   icons.IconName
	cursor     int
	closed     bool
}

// Open starts a picker over catalog with initial preselected. onSelect is
// called synchronously by OnSelect; it may be nil.
func Open(catalog Catalog, initial icons.IconName, onSelect func(icons.IconName)) *Picker {
	all := catalog.ListNames()
	p := &Picker{
		catalog:  catalog,
		all:      all,
		onSelect: onSelect,
		filtered: all,
		selected: initial,
	}
	p.cursor = p.indexOf(initial)
	return p
}

// OnSearchChanged recomputes the matches for term: the names, in catalog
// order, that contain term ignoring case. An empty term matches everything.
func (p *Picker) OnSearchChanged(term string) {
	p.searchTerm = term
	p.filtered = Filter(p.all, term)
	p.cursor = p.indexOf(p.selected)
}

// OnSelect marks name as selected and reports it to the caller. Names that
// are not in the catalog are rejected with icons.ErrGlyphNotFound.
func (p *Picker) OnSelect(name icons.IconName) error {
	if !p.catalog.Has(name) {
		return icons.ErrGlyphNotFound
	}

	p.selected = name
	if p.onSelect != nil {
		p.onSelect(name)
	}
	p.closed = true
	return nil
}

// SelectCurrent selects the name under the cursor.
func (p *Picker) SelectCurrent() error {
	name, ok := p.Current()
	if !ok {
		return icons.ErrGlyphNotFound
	}
	return p.OnSelect(name)
}

// Dismiss closes the picker without reporting a selection.
func (p *Picker) Dismiss() {
	p.closed = true
	p.filtered = nil
	p.searchTerm = ""
}

func (p *Picker) SearchTerm() string { return p.searchTerm }

// FilteredNames returns a copy of the current matches.
func (p *Picker) FilteredNames() []icons.IconName {
	out := make([]icons.IconName, len(p.filtered))
	copy(out, p.filtered)
	return out
}

func (p *Picker) Selected() icons.IconName { return p.selected }

func (p *Picker) Closed() bool { return p.closed }

func (p *Picker) Status() Status {
	if len(p.filtered) == 0 {
		return StatusNoMatches
	}
	return StatusMatches
}

// NoMatchesFor returns the term that produced no matches, or "" while
// there are matches.
func (p *Picker) NoMatchesFor() string {
	if p.Status() == StatusNoMatches {
		return p.searchTerm
	}
	return ""
}

// Move shifts the cursor by delta, clamped to the matches.
func (p *Picker) Move(delta int) {
	if len(p.filtered) == 0 {
		p.cursor = 0
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), len(p.filtered)-1)
}

func (p *Picker) Cursor() int { return p.cursor }

// Current returns the name under the cursor.
func (p *Picker) Current() (icons.IconName, bool) {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return "", false
	}
	return p.filtered[p.cursor], true
}

func (p *Picker) indexOf(name icons.IconName) int {
	if name == "" {
		return 0
	}
	for i, n := range p.filtered {
		if n == name {
			return i
		}
	}
	return 0
}

// Filter returns the names containing term, compared in lower case, keeping
// their order. An empty term returns names unchanged.
func Filter(names []icons.IconName, term string) []icons.IconName {
	if term == "" {
		return names
	}

	needle := lower(term)
	out := make([]icons.IconName, 0, len(names))
	for _, n := range names {
		if strings.Contains(lower(string(n)), needle) {
			out = append(out, n)
		}
	}
	return out
}

// A Caser is stateful and not safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
