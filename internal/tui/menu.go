package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
)

// MenuModel is the welcome page shown to anonymous users.
type MenuModel struct {
	tr *i18n.Translator

	items  []string
	idx    int
	status string
}

func NewMenuModel(tr *i18n.Translator) *MenuModel {
	return &MenuModel{
		tr:    tr,
		items: []string{tr.T("menu.login"), tr.T("menu.register")},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(noticeMsg); ok {
		m.status = notice.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		if m.idx == 0 {
			return m, navigate(pageLogin, nil)
		}
		return m, navigate(pageRegister, nil)
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	header := m.tr.T("menu.column_action")
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width(header)
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(noticeStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(padRight("ID", idColWidth) + " │ " + header + "\n")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(padRight(fmt.Sprintf("%s %d", cursor, i+1), idColWidth) + " │ " + item + "\n")
	}

	return renderPage(m.tr, m.tr.T("menu.title"), strings.TrimRight(b.String(), "\n"), m.tr.T("menu.hotkeys"))
}
