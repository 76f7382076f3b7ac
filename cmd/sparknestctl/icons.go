package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/picker"
)

var ErrNoMatches = errors.New("no matches")

type glyphView struct {
	Name   icons.IconName `json:"name"`
	Symbol string         `json:"symbol"`
}

// The icon commands work offline on the embedded catalog.
func newIconsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Browse the icon catalog",
	}
	cmd.AddCommand(newIconsSearchCmd(opts), newIconsShowCmd(opts))
	return cmd
}

func newIconsSearchCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "List the icons whose name contains term, ignoring case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			catalog := icons.Default()
			names := picker.Filter(catalog.ListNames(), term)
			if len(names) == 0 {
				return fmt.Errorf("%w for %q", ErrNoMatches, term)
			}
			if limit > 0 && len(names) > limit {
				names = names[:limit]
			}

			glyphs := make([]glyphView, 0, len(names))
			for _, name := range names {
				glyphs = append(glyphs, glyphView{Name: name, Symbol: catalog.Render(name)})
			}

			return opts.output(cmd.OutOrStdout(), glyphs, func() error {
				for _, g := range glyphs {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", g.Symbol, g.Name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results (0 for all)")
	return cmd
}

func newIconsShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the glyph of an icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := icons.Default().Resolve(icons.IconName(args[0]))
			if err != nil {
				return err
			}

			view := glyphView{Name: g.Name, Symbol: g.Symbol}
			return opts.output(cmd.OutOrStdout(), view, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", g.Symbol, g.Name)
				return err
			})
		},
	}
}
