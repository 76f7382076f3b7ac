package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/service"
	"github.com/MKhiriev/sparknest-admin/internal/validators"
	"github.com/MKhiriev/sparknest-admin/models"
)

// formField is one row of the form. Multiline fields use area, boolean
// fields keep their value in checked, the others use input.
type formField struct {
	field   models.Field
	input   textinput.Model
	area    textarea.Model
	checked bool
}

func (f *formField) value() string {
	switch f.field.Type {
	case models.FieldTypeMultiline:
		return f.area.Value()
	case models.FieldTypeBool:
		if f.checked {
			return "true"
		}
		return "false"
	default:
		return f.input.Value()
	}
}

func (f *formField) focus() tea.Cmd {
	switch f.field.Type {
	case models.FieldTypeMultiline:
		return f.area.Focus()
	case models.FieldTypeBool:
		return nil
	default:
		return f.input.Focus()
	}
}

func (f *formField) blur() {
	f.input.Blur()
	f.area.Blur()
}

// FormModel creates or edits a record of any kind. The fields come from the
// kind's schema; icon fields open the icon picker.
type FormModel struct {
	ctx       context.Context
	resources service.ResourceService
	validator validators.Validator
	catalog   *icons.Catalog
	tr        *i18n.Translator

	draft  models.Draft
	fields []formField
	focus  int

	picker *iconPickerModel

	saving bool
	errMsg string
}

func NewFormModel(ctx context.Context, resources service.ResourceService, validator validators.Validator, catalog *icons.Catalog, tr *i18n.Translator) *FormModel {
	return &FormModel{
		ctx:       ctx,
		resources: resources,
		validator: validator,
		catalog:   catalog,
		tr:        tr,
	}
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) open(draft models.Draft) tea.Cmd {
	m.draft = draft
	m.picker = nil
	m.saving = false
	m.errMsg = ""
	m.focus = 0
	m.fields = m.fields[:0]

	for _, f := range draft.Kind.Fields() {
		ff := formField{field: f}
		value := draft.Values[f.Name]
		if value == "" && draft.IsNew() {
			value = f.Default
		}

		switch f.Type {
		case models.FieldTypeMultiline:
			ff.area = textarea.New()
			ff.area.ShowLineNumbers = false
			ff.area.SetWidth(60)
			ff.area.SetHeight(4)
			ff.area.SetValue(value)
		case models.FieldTypeBool:
			ff.checked = models.ParseBool(value)
		default:
			ff.input = newTextInput(m.tr.T("field."+f.Name), 512)
			ff.input.Width = 60
			ff.input.SetValue(value)
		}
		m.fields = append(m.fields, ff)
	}

	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].focus()
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openFormMsg:
		return m, m.open(msg.draft)

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = m.tr.T("form.save_failed", humanizeError(m.tr, msg.err))
			return m, nil
		}
		notice := m.tr.T("form.updated")
		if msg.created {
			notice = m.tr.T("form.created")
		}
		return m, navigate(pageList, openListMsg{kind: msg.kind, notice: notice})
	}

	if m.picker != nil {
		cmd := m.picker.Update(msg)
		if m.picker.Closed() {
			m.picker = nil
		}
		return m, cmd
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		current := &m.fields[m.focus]

		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageList, openListMsg{kind: m.draft.Kind})
		case key.Matches(keyMsg, keys.tab):
			return m, m.moveFocus(1)
		case key.Matches(keyMsg, keys.backtab):
			return m, m.moveFocus(-1)
		case key.Matches(keyMsg, keys.save):
			return m, m.submit()
		case key.Matches(keyMsg, keys.enter) && current.field.Type == models.FieldTypeIcon:
			m.openPicker(m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter) && current.field.Type != models.FieldTypeMultiline:
			return m, m.moveFocus(1)
		case current.field.Type == models.FieldTypeBool:
			if key.Matches(keyMsg, keys.toggle) || key.Matches(keyMsg, keys.enter) {
				current.checked = !current.checked
			}
			return m, nil
		}
	}

	current := &m.fields[m.focus]
	var cmd tea.Cmd
	switch current.field.Type {
	case models.FieldTypeMultiline:
		current.area, cmd = current.area.Update(msg)
	case models.FieldTypeBool:
	default:
		current.input, cmd = current.input.Update(msg)
	}
	return m, cmd
}

// openPicker shows the icon picker for field i. The callback writes the
// chosen name straight into the field.
func (m *FormModel) openPicker(i int) {
	current := icons.IconName(strings.TrimSpace(m.fields[i].input.Value()))
	m.picker = newIconPicker(m.catalog, current, m.tr.T("picker.placeholder"), func(name icons.IconName) {
		m.fields[i].input.SetValue(string(name))
		m.errMsg = ""
	})
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	m.fields[m.focus].blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].focus()
}

func (m *FormModel) submit() tea.Cmd {
	if m.saving {
		return nil
	}

	draft := m.draft
	draft.Values = make(map[string]string, len(m.fields))
	for i := range m.fields {
		draft.Values[m.fields[i].field.Name] = strings.TrimSpace(m.fields[i].value())
	}

	if err := m.validator.Validate(m.ctx, draft); err != nil {
		m.errMsg = humanizeError(m.tr, err)
		return nil
	}

	m.errMsg = ""
	m.saving = true
	m.draft = draft
	return m.cmdSave(draft)
}

func (m *FormModel) View() string {
	if m.picker != nil {
		return m.picker.View(m.tr)
	}

	kindLabel := strings.ToUpper(m.tr.T("kind." + string(m.draft.Kind)))
	title := m.tr.T("form.title_new", kindLabel)
	if !m.draft.IsNew() {
		title = m.tr.T("form.title_edit", kindLabel)
	}

	width := 0
	for _, f := range m.fields {
		width = max(width, len([]rune(m.tr.T("field."+f.field.Name)))+1)
	}

	var b strings.Builder
	for i := range m.fields {
		f := &m.fields[i]

		label := m.tr.T("field." + f.field.Name)
		if f.field.Required {
			label += "*"
		}
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + padRight(label, width) + " │ ")

		switch f.field.Type {
		case models.FieldTypeMultiline:
			lines := strings.Split(f.area.View(), "\n")
			b.WriteString(lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n" + strings.Repeat(" ", width+2) + " │ " + line)
			}
		case models.FieldTypeBool:
			if f.checked {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
		case models.FieldTypeIcon:
			glyph := m.catalog.Render(icons.IconName(strings.TrimSpace(f.input.Value())))
			b.WriteString("[" + f.input.View() + "] " + glyph + "  " + helpStyle.Render(m.tr.T("form.icon_hint")))
		default:
			b.WriteString("[" + f.input.View() + "]")
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n" + helpStyle.Render(m.tr.T("form.saving")) + "\n")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage(m.tr, title, strings.TrimRight(b.String(), "\n"), m.tr.T("form.hotkeys"))
}

func (m *FormModel) cmdSave(draft models.Draft) tea.Cmd {
	ctx, resources := m.ctx, m.resources

	return func() tea.Msg {
		var err error
		if draft.IsNew() {
			_, err = resources.Create(ctx, draft.Kind, draft.Entity())
		} else {
			_, err = resources.Update(ctx, draft.Kind, draft.ID, draft.Entity())
		}
		return savedMsg{kind: draft.Kind, created: draft.IsNew(), err: err}
	}
}
