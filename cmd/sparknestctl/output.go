package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// output writes v as JSON when --json is set, otherwise calls text.
func (o *rootOptions) output(w io.Writer, v any, text func() error) error {
	if o.jsonOutput {
		return writeJSON(w, v)
	}
	return text()
}
