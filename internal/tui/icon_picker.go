package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/picker"
)

const (
	pickerColumns  = 4
	pickerRows     = 8
	pickerCellSize = 20
)

// iconPickerModel is the overlay around a picker.Picker: a search input
// above a grid of the matching glyphs.
type iconPickerModel struct {
	picker  *picker.Picker
	catalog *icons.Catalog
	search  textinput.Model
	err     error
}

// newIconPicker opens a picker preselecting current. onSelect runs
// synchronously when the user confirms a glyph.
func newIconPicker(catalog *icons.Catalog, current icons.IconName, placeholder string, onSelect func(icons.IconName)) *iconPickerModel {
	search := textinput.New()
	search.Placeholder = placeholder
	search.CharLimit = 64
	search.Width = 30
	search.Focus()

	return &iconPickerModel{
		picker:  picker.Open(catalog, current, onSelect),
		catalog: catalog,
		search:  search,
	}
}

func (m *iconPickerModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.picker.Dismiss()
			return nil
		case key.Matches(keyMsg, keys.enter):
			if m.picker.Status() == picker.StatusNoMatches {
				return nil
			}
			m.err = m.picker.SelectCurrent()
			return nil
		case keyMsg.Type == tea.KeyLeft:
			m.picker.Move(-1)
			return nil
		case keyMsg.Type == tea.KeyRight:
			m.picker.Move(1)
			return nil
		case keyMsg.Type == tea.KeyUp:
			m.picker.Move(-pickerColumns)
			return nil
		case keyMsg.Type == tea.KeyDown:
			m.picker.Move(pickerColumns)
			return nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.picker.OnSearchChanged(m.search.Value())
		m.err = nil
	}
	return cmd
}

func (m *iconPickerModel) Closed() bool { return m.picker.Closed() }

func (m *iconPickerModel) View(tr *i18n.Translator) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tr.T("picker.title")))
	b.WriteString("\n\n")
	b.WriteString(tr.T("picker.search") + ": [" + m.search.View() + "]\n\n")

	names := m.picker.FilteredNames()
	if m.picker.Status() == picker.StatusNoMatches {
		b.WriteString(tr.T("picker.no_matches", m.picker.NoMatchesFor()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewGrid(names))
		b.WriteString(helpStyle.Render(tr.T("picker.count", len(names))))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(tr.T("picker.hotkeys")))
	return overlayBoxStyle.Render(b.String())
}

// viewGrid renders the window of rows around the cursor.
func (m *iconPickerModel) viewGrid(names []icons.IconName) string {
	cursor := m.picker.Cursor()
	selected := m.picker.Selected()

	totalRows := (len(names) + pickerColumns - 1) / pickerColumns
	firstRow := max(0, min(cursor/pickerColumns-pickerRows/2, totalRows-pickerRows))

	var b strings.Builder
	for row := firstRow; row < min(firstRow+pickerRows, totalRows); row++ {
		for col := 0; col < pickerColumns; col++ {
			i := row*pickerColumns + col
			if i >= len(names) {
				break
			}

			cell := padRight(m.catalog.Render(names[i]), 2) + " " + fitText(string(names[i]), pickerCellSize-4)
			if names[i] == selected {
				cell = "*" + cell
			} else {
				cell = " " + cell
			}
			cell = padRight(cell, pickerCellSize)
			if i == cursor {
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
