package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/internal/client"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/models"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidSet      = errors.New("invalid --set value, expected field=value")
	ErrDeleteNotForced = errors.New("refusing to delete without --yes")
)

const kindsHelp = "articles, projects, services, technologies, testimonials, marketplace-items, messages"

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List the records of a content type",
		Long:  "List the records of a content type: " + kindsHelp + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseResourceKind(args[0])
			if err != nil {
				return err
			}

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			items, err := rt.Services.Resources.List(cmd.Context(), kind)
			if err != nil {
				return err
			}
			if items == nil {
				items = []models.Entity{}
			}

			return opts.output(cmd.OutOrStdout(), items, func() error {
				if len(items) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Translator.T("list.empty"))
					return err
				}
				headers, rows := entityTable(rt, kind, items)
				return writeTable(cmd.OutOrStdout(), headers, rows)
			})
		},
	}
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "create <kind> --set field=value...",
		Short: "Create a record",
		Example: `  sparknestctl create technology --set name=Go --set icon=Code
  sparknestctl create article --set title=Hello --set category=News --set content="..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseResourceKind(args[0])
			if err != nil {
				return err
			}

			draft := models.NewDraft(kind)
			if err := applySets(&draft, sets); err != nil {
				return err
			}

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := rt.Validator.Validate(cmd.Context(), draft); err != nil {
				return err
			}

			created, err := rt.Services.Resources.Create(cmd.Context(), kind, draft.Entity())
			if err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), created, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s #%s\n", rt.Translator.T("form.created"), created.ID())
				return err
			})
		},
	}

	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Field value as field=value (repeatable)")
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update <kind> <id> --set field=value...",
		Short: "Update a record; fields not given keep their value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseResourceKind(args[0])
			if err != nil {
				return err
			}
			id := models.ID(args[1])

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			// the API has no single-record read
			items, err := rt.Services.Resources.List(cmd.Context(), kind)
			if err != nil {
				return err
			}
			idx := slices.IndexFunc(items, func(e models.Entity) bool { return e.ID() == id })
			if idx < 0 {
				return fmt.Errorf("%w: %s #%s", ErrRecordNotFound, kind, id)
			}

			draft := models.EditDraft(kind, items[idx])
			if err := applySets(&draft, sets); err != nil {
				return err
			}
			if err := rt.Validator.Validate(cmd.Context(), draft); err != nil {
				return err
			}

			updated, err := rt.Services.Resources.Update(cmd.Context(), kind, id, draft.Entity())
			if err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), updated, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s #%s\n", rt.Translator.T("form.updated"), id)
				return err
			})
		},
	}

	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Field value as field=value (repeatable)")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseResourceKind(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return ErrDeleteNotForced
			}

			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			id := models.ID(args[1])
			if err := rt.Services.Resources.Delete(cmd.Context(), kind, id); err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), map[string]any{"deleted": true, "kind": kind, "id": id}, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Translator.T("list.deleted"))
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}

func newReadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <message-id>",
		Short: "Mark a contact message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			id := models.ID(args[0])
			if err := rt.Services.Resources.MarkRead(cmd.Context(), id); err != nil {
				return err
			}

			return opts.output(cmd.OutOrStdout(), map[string]any{"read": true, "id": id}, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.Translator.T("list.marked_read"))
				return err
			})
		},
	}
}

// applySets writes field=value pairs into the draft. Fields must belong to
// the kind's schema.
func applySets(draft *models.Draft, sets []string) error {
	fields := draft.Kind.Fields()
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("%w: %q", ErrInvalidSet, set)
		}
		if !slices.ContainsFunc(fields, func(f models.Field) bool { return f.Name == name }) {
			return fmt.Errorf("%w: %s has no field %q", ErrInvalidSet, draft.Kind, name)
		}
		draft.Values[name] = value
	}
	return nil
}

func entityTable(rt *client.Runtime, kind models.ResourceKind, items []models.Entity) ([]string, [][]string) {
	tr := rt.Translator
	catalog := rt.Services.Icons

	headers := []string{tr.T("field.id"), tr.T("field." + kind.TitleField())}
	switch kind {
	case models.Messages:
		headers = append(headers, tr.T("field.email"), tr.T("field.read"))
	case models.Technologies, models.Services, models.MarketplaceItems:
		headers = append(headers, tr.T("field.icon"))
	case models.Projects:
		headers = append(headers, tr.T("field.status"))
	case models.Articles:
		headers = append(headers, tr.T("field.category"))
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := []string{item.ID().String(), item.String(kind.TitleField())}
		switch kind {
		case models.Messages:
			read := "-"
			if item.Bool(models.FieldRead) {
				read = "x"
			}
			row = append(row, item.String(models.FieldEmail), read)
		case models.Technologies:
			icon := catalog.TechnologyIcon(item.String(models.FieldName), icons.IconName(item.String(models.FieldIcon)))
			row = append(row, catalog.Render(icon)+" "+icon.String())
		case models.Services, models.MarketplaceItems:
			icon := icons.IconName(item.String(models.FieldIcon))
			row = append(row, strings.TrimSpace(catalog.Render(icon)+" "+icon.String()))
		case models.Projects:
			row = append(row, item.String(models.FieldStatus))
		case models.Articles:
			row = append(row, item.String(models.FieldCategory))
		}
		rows = append(rows, row)
	}
	return headers, rows
}
