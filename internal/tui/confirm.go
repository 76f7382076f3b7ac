package tui

import "github.com/MKhiriev/sparknest-admin/internal/i18n"

type confirmModel struct {
	message string
}

func (m confirmModel) View(tr *i18n.Translator) string {
	content := tr.T("confirm.delete", m.message) + "\n\n"
	content += tr.T("common.yes_no")
	return overlayBoxStyle.Render(content)
}
