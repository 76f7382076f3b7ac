package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(tr *i18n.Translator, title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(tr.T("common.quit")))

	return b.String()
}

// renderStatus renders the notice or error line shown under a page body.
func renderStatus(notice, errMsg string) string {
	switch {
	case errMsg != "":
		return "\n" + errorStyle.Render(errMsg)
	case notice != "":
		return "\n" + noticeStyle.Render("OK: "+notice)
	default:
		return ""
	}
}

// padRight pads v with spaces to width display cells.
func padRight(v string, width int) string {
	if w := lipgloss.Width(v); w < width {
		return v + strings.Repeat(" ", width-w)
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// oneLine collapses newlines so multi-line content fits a table row.
func oneLine(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
