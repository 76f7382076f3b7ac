package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/models"
)

// clipboardWrite is replaced in tests; the system clipboard is not
// available on CI machines.
var clipboardWrite = clipboard.WriteAll

const titleColumnWidth = 36

// ListModel shows the records of one kind. Messages get their own actions:
// mark as read and copy the sender's email.
type ListModel struct {
	ctx       context.Context
	resources service.ResourceService
	catalog   *icons.Catalog
	tr        *i18n.Translator

	kind    models.ResourceKind
	items   []models.Entity
	idx     int
	loading bool
	detail  bool

	confirm *confirmModel
	overlay *errorOverlayModel

	status string
	errMsg string
}

func NewListModel(ctx context.Context, resources service.ResourceService, catalog *icons.Catalog, tr *i18n.Translator) *ListModel {
	return &ListModel{
		ctx:       ctx,
		resources: resources,
		catalog:   catalog,
		tr:        tr,
		kind:      models.Articles,
	}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openListMsg:
		if msg.kind != m.kind {
			m.items = nil
			m.idx = 0
		}
		m.kind = msg.kind
		m.status = msg.notice
		m.errMsg = ""
		m.detail = false
		m.confirm, m.overlay = nil, nil
		m.loading = true
		return m, m.cmdLoad()

	case listLoadedMsg:
		if msg.kind != m.kind {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: m.tr.T("list.load_failed", m.kindLabel(), humanizeError(m.tr, msg.err))}
			return m, nil
		}
		m.items = msg.items
		m.idx = min(m.idx, max(len(m.items)-1, 0))
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: m.tr.T("list.delete_failed", humanizeError(m.tr, msg.err))}
			return m, nil
		}
		m.status = m.tr.T("list.deleted")
		m.loading = true
		return m, m.cmdLoad()

	case markReadDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: m.tr.T("list.mark_read_failed", humanizeError(m.tr, msg.err))}
			return m, nil
		}
		m.status = m.tr.T("list.marked_read")
		m.loading = true
		return m, m.cmdLoad()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = m.tr.T("list.copy_failed", msg.err.Error())
			return m, nil
		}
		m.errMsg = ""
		m.status = m.tr.T("list.copied", msg.value)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			if item, ok := m.current(); ok {
				return m, m.cmdDelete(item.ID())
			}
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.detail {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.detail = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDashboard, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = true
		}
	case key.Matches(msg, keys.refresh):
		if !m.loading {
			m.loading = true
			m.status, m.errMsg = "", ""
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.newItem):
		if m.kind.Creatable() {
			return m, navigate(pageForm, openFormMsg{draft: models.NewDraft(m.kind)})
		}
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok && m.kind.Creatable() {
			return m, navigate(pageForm, openFormMsg{draft: models.EditDraft(m.kind, item)})
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok {
			m.confirm = &confirmModel{message: m.itemTitle(item)}
		}
	case key.Matches(msg, keys.markRead):
		if item, ok := m.current(); ok && m.kind == models.Messages && !item.Bool(models.FieldRead) {
			return m, m.cmdMarkRead(item.ID())
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.current(); ok && m.kind == models.Messages {
			return m, cmdCopyToClipboard(item.String(models.FieldEmail))
		}
	}

	return m, nil
}

func (m *ListModel) View() string {
	if m.overlay != nil {
		return m.overlay.View(m.tr)
	}
	if m.confirm != nil {
		return m.confirm.View(m.tr)
	}

	hotKeys := m.tr.T("list.hotkeys")
	if m.kind == models.Messages {
		hotKeys = m.tr.T("list.hotkeys_messages")
	}

	if m.detail {
		if item, ok := m.current(); ok {
			return renderPage(m.tr, strings.ToUpper(m.kindLabel()), m.viewDetail(item), hotKeys)
		}
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(helpStyle.Render(m.tr.T("common.loading")))
	case len(m.items) == 0:
		b.WriteString(m.tr.T("list.empty"))
	default:
		for i, item := range m.items {
			line := m.viewRow(item)
			if i == m.idx {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage(m.tr, strings.ToUpper(m.kindLabel()), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ListModel) viewRow(item models.Entity) string {
	title := padRight(fitText(oneLine(m.itemTitle(item)), titleColumnWidth), titleColumnWidth)

	switch m.kind {
	case models.Messages:
		marker := "  "
		if !item.Bool(models.FieldRead) {
			marker = unreadStyle.Render("● ")
			title = unreadStyle.Render(title)
		}
		return marker + title + " │ " + fitText(item.String(models.FieldEmail), 28) + " │ " + fitText(oneLine(item.String(models.FieldSubject)), 24)
	case models.Technologies:
		icon := m.catalog.TechnologyIcon(item.String(models.FieldName), icons.IconName(item.String(models.FieldIcon)))
		return padRight(m.catalog.Render(icon), 2) + " " + title
	case models.Services, models.MarketplaceItems:
		return padRight(m.catalog.Render(icons.IconName(item.String(models.FieldIcon))), 2) + " " + title
	case models.Projects:
		return title + " │ " + item.String(models.FieldStatus)
	case models.Articles:
		return title + " │ " + item.String(models.FieldCategory)
	default:
		return title
	}
}

func (m *ListModel) viewDetail(item models.Entity) string {
	fields := m.kind.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len([]rune(m.tr.T("field."+f.Name))))
	}

	var b strings.Builder
	for _, f := range fields {
		value := item.String(f.Name)
		switch f.Type {
		case models.FieldTypeBool:
			value = "[ ]"
			if item.Bool(f.Name) {
				value = "[x]"
			}
		case models.FieldTypeIcon:
			if glyph := m.catalog.Render(icons.IconName(value)); glyph != "" {
				value = glyph + " " + value
			}
		}
		b.WriteString(padRight(m.tr.T("field."+f.Name), width) + " │ " + valueOrDash(value) + "\n")
	}
	if created := item.String(models.FieldCreatedAt); created != "" {
		b.WriteString(padRight(m.tr.T("field.createdAt"), width) + " │ " + created + "\n")
	}
	b.WriteString(renderStatus(m.status, m.errMsg))
	return strings.TrimRight(b.String(), "\n")
}

func (m *ListModel) current() (models.Entity, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return nil, false
	}
	return m.items[m.idx], true
}

func (m *ListModel) itemTitle(item models.Entity) string {
	if title := item.String(m.kind.TitleField()); title != "" {
		return title
	}
	return "#" + string(item.ID())
}

func (m *ListModel) kindLabel() string {
	return m.tr.T("kind." + string(m.kind))
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx, resources, kind := m.ctx, m.resources, m.kind

	return func() tea.Msg {
		items, err := resources.List(ctx, kind)
		return listLoadedMsg{kind: kind, items: items, err: err}
	}
}

func (m *ListModel) cmdDelete(id models.ID) tea.Cmd {
	ctx, resources, kind := m.ctx, m.resources, m.kind

	return func() tea.Msg {
		return deleteDoneMsg{err: resources.Delete(ctx, kind, id)}
	}
}

func (m *ListModel) cmdMarkRead(id models.ID) tea.Cmd {
	ctx, resources := m.ctx, m.resources

	return func() tea.Msg {
		return markReadDoneMsg{id: id, err: resources.MarkRead(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{value: text, err: clipboardWrite(text)}
	}
}
