package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
//
// Pages are pointers, so updating the current page updates the registered one.
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	tr        *i18n.Translator
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, tr *i18n.Translator, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		tr:          tr,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentName == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentName = nav.Page

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.tr, r.buildInfo)
	}
	if r.current == nil {
		return renderPage(r.tr, r.tr.T("app.name"), "", "")
	}
	return r.current.View()
}

// CurrentPage returns the name of the active page.
func (r RootModel) CurrentPage() string { return r.currentName }

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
