// Package icons exposes the bundled glyph library: the list of valid icon
// names and the lookup of a name to a renderable glyph.
package icons

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
)

// ErrGlyphNotFound is the NotFound outcome of Resolve.
var ErrGlyphNotFound = errors.New("glyph not found")

// FallbackIcon is shown for technologies whose icon cannot be resolved.
const FallbackIcon IconName = "HelpCircle"

//go:embed glyphs.json
var glyphsJSON []byte

// utilityExports are exported by the glyph library alongside the icons but
// are not icons themselves.
var utilityExports = map[string]struct{}{
	"createLucideIcon": {},
	"icons":            {},
	"Icon":             {},
	"LucideProvider":   {},
	"default":          {},
}

// technologyIcons maps well-known technology names to an icon when the
// technology record carries none.
var technologyIcons = map[string]IconName{
	"Node JS":    "Server",
	"Typescript": "Brackets",
	"React":      "Atom",
	"HTML":       "Html5",
	"CSS":        "Css3",
}

// IconName identifies a glyph of the catalog.
type IconName string

func (n IconName) String() string { return string(n) }

// Glyph is a renderable icon.
type Glyph struct {
	Name   IconName
	Symbol string
}

type bundleEntry struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Catalog is the immutable set of glyphs. It is safe for concurrent use.
type Catalog struct {
	names  []IconName
	glyphs map[IconName]Glyph
	logger *logger.Logger
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := parse(glyphsJSON)
	if err != nil {
		panic("icons: failed to parse embedded glyphs: " + err.Error())
	}
	return c
})

// Default returns the catalog built from the embedded glyph bundle.
func Default() *Catalog {
	return defaultCatalog()
}

// Load builds a catalog from a JSON bundle: an array of {"name","symbol"}
// exports in library order.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read glyph bundle: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var entries []bundleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode glyph bundle: %w", err)
	}

	c := &Catalog{
		names:  make([]IconName, 0, len(entries)),
		glyphs: make(map[IconName]Glyph, len(entries)),
		logger: logger.Nop(),
	}
	for _, e := range entries {
		if !IsIconExport(e.Name) || e.Symbol == "" {
			continue
		}
		name := IconName(e.Name)
		if _, dup := c.glyphs[name]; dup {
			continue
		}
		c.names = append(c.names, name)
		c.glyphs[name] = Glyph{Name: name, Symbol: e.Symbol}
	}

	return c, nil
}

// IsIconExport reports whether a library export qualifies as an icon name:
// it starts with an upper-case letter and is not a known utility export.
func IsIconExport(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return false
	}
	_, utility := utilityExports[name]
	return !utility
}

// WithLogger returns a catalog sharing c's glyphs that reports diagnostics
// to log.
func (c *Catalog) WithLogger(log *logger.Logger) *Catalog {
	return &Catalog{names: c.names, glyphs: c.glyphs, logger: log}
}

// ListNames returns every icon name in library order. The slice is a copy.
func (c *Catalog) ListNames() []IconName {
	return slices.Clone(c.names)
}

func (c *Catalog) Len() int { return len(c.names) }

func (c *Catalog) Has(name IconName) bool {
	_, ok := c.glyphs[name]
	return ok
}

// Resolve returns the glyph for name, or ErrGlyphNotFound with a warning
// logged. It never panics.
func (c *Catalog) Resolve(name IconName) (Glyph, error) {
	g, ok := c.glyphs[name]
	if !ok {
		c.logger.Warn().Str("icon", string(name)).Msgf("icon %q not found", string(name))
		return Glyph{}, fmt.Errorf("%w: %q", ErrGlyphNotFound, string(name))
	}
	return g, nil
}

// Render returns the glyph symbol, or "" when name is unknown.
func (c *Catalog) Render(name IconName) string {
	g, err := c.Resolve(name)
	if err != nil {
		return ""
	}
	return g.Symbol
}

// TechnologyIcon picks the icon shown for a technology: its own icon when
// valid, then the well-known mapping for its name, then FallbackIcon.
func (c *Catalog) TechnologyIcon(technology string, icon IconName) IconName {
	if icon != "" && c.Has(icon) {
		return icon
	}
	if mapped, ok := technologyIcons[technology]; ok && c.Has(mapped) {
		return mapped
	}
	return FallbackIcon
}
