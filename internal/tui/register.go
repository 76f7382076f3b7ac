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

// RegisterModel is the registration screen: name, email, password and its
// confirmation. A successful registration does not log in; the menu is
// reopened with the backend's message.
type RegisterModel struct {
	ctx       context.Context
	session   service.SessionService
	validator validators.Validator
	tr        *i18n.Translator

	inputFocus
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionService, validator validators.Validator, tr *i18n.Translator) *RegisterModel {
	fields := []textinput.Model{
		newTextInput("name", 100),
		newTextInput("email", 254),
		newPasswordInput("password"),
		newPasswordInput("repeat password"),
	}
	fields[0].Focus()

	return &RegisterModel{
		ctx:        ctx,
		session:    session,
		validator:  validator,
		tr:         tr,
		inputFocus: inputFocus{inputs: fields},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(m.tr, result.err)
			return m, nil
		}

		m.errMsg = ""
		m.reset()

		notice := result.message
		if notice == "" {
			notice = m.tr.T("auth.register_success")
		}
		return m, navigate(pageMenu, noticeMsg{text: notice})
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

			reg := models.Registration{
				Name:            strings.TrimSpace(m.inputs[0].Value()),
				Email:           strings.TrimSpace(m.inputs[1].Value()),
				Password:        m.inputs[2].Value(),
				ConfirmPassword: m.inputs[3].Value(),
			}
			if err := m.validator.Validate(m.ctx, reg); err != nil {
				m.errMsg = humanizeError(m.tr, err)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{
		m.tr.T("field.name"),
		m.tr.T("field.email"),
		m.tr.T("field.password"),
		m.tr.T("field.confirmPassword"),
	}
	width := 0
	for _, l := range labels {
		width = max(width, len([]rune(l)))
	}

	var b strings.Builder
	for i, l := range labels {
		b.WriteString(padRight(l, width) + " │ [" + m.inputs[i].View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[" + m.tr.T("register.submitting") + "]\n")
	} else {
		b.WriteString("\n[" + m.tr.T("register.submit") + "]\n")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage(m.tr, m.tr.T("register.title"), strings.TrimRight(b.String(), "\n"), m.tr.T("auth.hotkeys"))
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		message, err := session.Register(ctx, reg)
		return registerDoneMsg{message: message, err: err}
	}
}
