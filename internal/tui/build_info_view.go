// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sparknest-admin/internal/i18n"
	"github.com/MKhiriev/sparknest-admin/models"
)

func renderBuildInfoWindow(tr *i18n.Translator, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(tr.T("app.name"))
	b.WriteString("\n")
	b.WriteString(tr.T("build.version"))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(tr.T("build.date"))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(tr.T("build.commit"))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage(tr, tr.T("build.title"), b.String(), tr.T("build.hotkeys"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
