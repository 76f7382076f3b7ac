package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sparknest-admin/internal/icons"
)

type stubCatalog []icons.IconName

func (c stubCatalog) ListNames() []icons.IconName {
	out := make([]icons.IconName, len(c))
	copy(out, c)
	return out
}

func (c stubCatalog) Has(name icons.IconName) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}

var testCatalog = stubCatalog{"Mail", "MailOpen", "Star", "Smile", "Émoji", "ArrowUp"}

// ── Open ──────────────────────────────────────────────────────────────────────

func TestOpen_InitialState(t *testing.T) {
	p := Open(testCatalog, "Star", nil)

	assert.Equal(t, "", p.SearchTerm())
	assert.Equal(t, []icons.IconName(testCatalog), p.FilteredNames())
	assert.Equal(t, icons.IconName("Star"), p.Selected())
	assert.Equal(t, 2, p.Cursor())
	assert.Equal(t, StatusMatches, p.Status())
	assert.False(t, p.Closed())
}

func TestOpen_EmptySelection(t *testing.T) {
	p := Open(testCatalog, "", nil)

	assert.Empty(t, p.Selected())
	assert.Equal(t, 0, p.Cursor())
}

// ── OnSearchChanged ───────────────────────────────────────────────────────────

func TestOnSearchChanged(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []icons.IconName
	}{
		{"empty term is full catalog", "", []icons.IconName(testCatalog)},
		{"case insensitive", "MAIL", []icons.IconName{"Mail", "MailOpen"}},
		{"substring in the middle", "open", []icons.IconName{"MailOpen"}},
		{"keeps catalog order", "s", []icons.IconName{"Star", "Smile"}},
		{"unicode lower case", "émo", []icons.IconName{"Émoji"}},
		{"unicode upper term", "ÉMOJI", []icons.IconName{"Émoji"}},
		{"no match", "zzz", []icons.IconName{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Open(testCatalog, "", nil)
			p.OnSearchChanged(tt.term)

			assert.Equal(t, tt.term, p.SearchTerm())
			assert.Equal(t, tt.want, p.FilteredNames())
		})
	}
}

func TestOnSearchChanged_SubstringAnywhereKeepsOrder(t *testing.T) {
	p := Open(stubCatalog{"Clock", "Cloud", "Bicycle", "Star"}, "", nil)

	p.OnSearchChanged("cl")

	// "Bicycle" совпадает по середине слова
	assert.Equal(t, []icons.IconName{"Clock", "Cloud", "Bicycle"}, p.FilteredNames())
	assert.Equal(t, StatusMatches, p.Status())
}

func TestOnSearchChanged_IsIdempotent(t *testing.T) {
	p := Open(testCatalog, "", nil)

	p.OnSearchChanged("ma")
	first := p.FilteredNames()
	p.OnSearchChanged("ma")

	assert.Equal(t, first, p.FilteredNames())
}

func TestOnSearchChanged_ClearRestoresCatalog(t *testing.T) {
	p := Open(testCatalog, "", nil)

	p.OnSearchChanged("star")
	p.OnSearchChanged("")

	assert.Equal(t, []icons.IconName(testCatalog), p.FilteredNames())
}

func TestNoMatches(t *testing.T) {
	p := Open(testCatalog, "Mail", nil)

	p.OnSearchChanged("qwerty")

	assert.Equal(t, StatusNoMatches, p.Status())
	assert.Equal(t, "qwerty", p.NoMatchesFor())
	assert.Equal(t, icons.IconName("Mail"), p.Selected())
	_, ok := p.Current()
	assert.False(t, ok)

	p.OnSearchChanged("mail")
	assert.Equal(t, StatusMatches, p.Status())
	assert.Equal(t, "", p.NoMatchesFor())
}

// ── OnSelect ──────────────────────────────────────────────────────────────────

func TestOnSelect_InvokesCallbackSynchronously(t *testing.T) {
	var got []icons.IconName
	p := Open(testCatalog, "Mail", func(name icons.IconName) { got = append(got, name) })

	require.NoError(t, p.OnSelect("Smile"))

	assert.Equal(t, []icons.IconName{"Smile"}, got)
	assert.Equal(t, icons.IconName("Smile"), p.Selected())
	assert.True(t, p.Closed())
}

func TestOnSelect_UnknownName(t *testing.T) {
	called := false
	p := Open(testCatalog, "Mail", func(icons.IconName) { called = true })

	err := p.OnSelect("Nope")

	assert.ErrorIs(t, err, icons.ErrGlyphNotFound)
	assert.False(t, called)
	assert.Equal(t, icons.IconName("Mail"), p.Selected())
	assert.False(t, p.Closed())
}

func TestOnSelect_NameOutsideFilterStillAllowed(t *testing.T) {
	p := Open(testCatalog, "", nil)
	p.OnSearchChanged("star")

	require.NoError(t, p.OnSelect("Mail"))
	assert.Equal(t, icons.IconName("Mail"), p.Selected())
}

func TestDismiss_DoesNotReport(t *testing.T) {
	called := false
	p := Open(testCatalog, "Mail", func(icons.IconName) { called = true })
	p.OnSearchChanged("sm")

	p.Dismiss()

	assert.False(t, called)
	assert.True(t, p.Closed())
	assert.Equal(t, icons.IconName("Mail"), p.Selected())
}

// ── cursor ────────────────────────────────────────────────────────────────────

func TestMoveAndSelectCurrent(t *testing.T) {
	var got icons.IconName
	p := Open(testCatalog, "", func(name icons.IconName) { got = name })

	p.Move(-5)
	assert.Equal(t, 0, p.Cursor())
	p.Move(100)
	assert.Equal(t, len(testCatalog)-1, p.Cursor())

	p.OnSearchChanged("mail")
	p.Move(1)
	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, icons.IconName("MailOpen"), cur)

	require.NoError(t, p.SelectCurrent())
	assert.Equal(t, icons.IconName("MailOpen"), got)
}

func TestSelectCurrent_NoMatches(t *testing.T) {
	p := Open(testCatalog, "", nil)
	p.OnSearchChanged("zzz")
	p.Move(1)

	assert.ErrorIs(t, p.SelectCurrent(), icons.ErrGlyphNotFound)
}

func TestPicker_WithDefaultCatalog(t *testing.T) {
	p := Open(icons.Default(), "", nil)
	p.OnSearchChanged("circle")

	names := p.FilteredNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, icons.IconName("HelpCircle"))
	for _, n := range names {
		assert.Contains(t, lower(string(n)), "circle")
	}
}
