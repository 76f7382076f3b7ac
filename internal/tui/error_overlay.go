package tui

import "github.com/MKhiriev/sparknest-admin/internal/i18n"

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(tr *i18n.Translator) string {
	content := errorStyle.Render(tr.T("common.error")) + "\n\n" + m.message + "\n\n" + tr.T("common.close")
	return overlayBoxStyle.Render(content)
}
