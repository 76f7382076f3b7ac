package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/models"
)

// DashboardModel greets the user, shows a counter per content type and
// offers the quick actions of the home screen.
type DashboardModel struct {
	ctx       context.Context
	session   service.SessionService
	dashboard service.DashboardService
	tr        *i18n.Translator

	kinds   []models.ResourceKind
	idx     int
	stats   models.DashboardStats
	loading bool
	status  string
	errMsg  string
}

func NewDashboardModel(ctx context.Context, session service.SessionService, dashboard service.DashboardService, tr *i18n.Translator) *DashboardModel {
	return &DashboardModel{
		ctx:       ctx,
		session:   session,
		dashboard: dashboard,
		tr:        tr,
		kinds:     models.AllResourceKinds(),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()

	case statsLoadedMsg:
		m.loading = false
		m.stats = msg.stats
		return m, nil

	case logoutDoneMsg:
		notice := noticeMsg{text: m.tr.T("auth.logged_out")}
		if msg.err != nil {
			// the in-memory session is gone even if the store failed
			notice.text = humanizeError(m.tr, msg.err)
		}
		m.status, m.errMsg = "", ""
		m.stats = models.DashboardStats{}
		return m, navigate(pageMenu, notice)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.kinds)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			m.status = ""
			return m, navigate(pageList, openListMsg{kind: m.kinds[m.idx]})
		case key.Matches(msg, keys.article):
			m.status = ""
			return m, navigate(pageForm, openFormMsg{draft: models.NewDraft(models.Articles)})
		case key.Matches(msg, keys.project):
			m.status = ""
			return m, navigate(pageForm, openFormMsg{draft: models.NewDraft(models.Projects)})
		case key.Matches(msg, keys.refresh):
			if !m.loading {
				m.loading = true
				m.status = ""
				return m, m.cmdLoad()
			}
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	name := m.tr.T("dashboard.default_name")
	if user, ok := m.session.CurrentUser(); ok {
		name = user.DisplayName()
	}
	b.WriteString(m.tr.T("dashboard.greeting", name))
	b.WriteString("\n")
	if exp, ok := m.session.SessionExpiry(); ok {
		b.WriteString(helpStyle.Render(m.tr.T("dashboard.expires", exp.Local().Format(time.DateTime))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labelWidth := 0
	for _, kind := range m.kinds {
		labelWidth = max(labelWidth, len([]rune(m.tr.T("kind."+string(kind)))))
	}

	for i, kind := range m.kinds {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		count := "…"
		switch {
		case m.loading:
		case m.stats.Errors[kind] != nil:
			count = m.tr.T("dashboard.unavailable")
		default:
			count = fmt.Sprintf("%d", m.stats.Counts[kind])
		}

		line := cursor + padRight(m.tr.T("kind."+string(kind)), labelWidth) + " │ " + count
		if kind == models.Messages && !m.loading && m.stats.Errors[kind] == nil && m.stats.UnreadMessages > 0 {
			line += "  " + unreadStyle.Render(m.tr.T("dashboard.unread", m.stats.UnreadMessages))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n" + helpStyle.Render(m.tr.T("common.loading")))
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage(m.tr, m.tr.T("dashboard.title"), strings.TrimRight(b.String(), "\n"), m.tr.T("dashboard.hotkeys"))
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		return statsLoadedMsg{stats: dashboard.Load(ctx)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}
