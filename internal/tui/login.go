// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/internal/validators"
	"github.com/MKhiriev/sparknest-admin/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// On success the dashboard is opened with a success notice.
type LoginModel struct {
	ctx       context.Context
	session   service.SessionService
	validator validators.Validator
	tr        *i18n.Translator

	inputFocus
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionService, validator validators.Validator, tr *i18n.Translator) *LoginModel {
	emailInput := newTextInput("email", 254)
	emailInput.Focus()

	return &LoginModel{
		ctx:        ctx,
		session:    session,
		validator:  validator,
		tr:         tr,
		inputFocus: inputFocus{inputs: []textinput.Model{emailInput, newPasswordInput("password")}},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginDoneMsg] clears submitting state; on error, populates errMsg,
//     on success resets the form and opens the dashboard.
//   - esc goes back to the menu.
//   - tab / shift+tab move the focus.
//   - enter validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(m.tr, result.err)
			return m, nil
		}

		m.errMsg = ""
		m.reset()
		return m, navigate(pageDashboard, noticeMsg{text: m.tr.T("auth.login_success")})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab):
			m.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			creds := models.Credentials{
				Email:    strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if err := m.validator.Validate(m.ctx, creds); err != nil {
				m.errMsg = humanizeError(m.tr, err)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	emailLabel := m.tr.T("field.email")
	passwordLabel := m.tr.T("field.password")
	width := max(len([]rune(emailLabel)), len([]rune(passwordLabel)))

	var b strings.Builder
	b.WriteString(padRight(emailLabel, width) + " │ [" + m.inputs[0].View() + "]\n")
	b.WriteString(padRight(passwordLabel, width) + " │ [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[" + m.tr.T("login.submitting") + "]\n")
	} else {
		b.WriteString("\n[" + m.tr.T("login.submit") + "]\n")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage(m.tr, m.tr.T("login.title"), strings.TrimRight(b.String(), "\n"), m.tr.T("auth.hotkeys"))
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		s, err := session.Login(ctx, creds)
		return loginDoneMsg{session: s, err: err}
	}
}
