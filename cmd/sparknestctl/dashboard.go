package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/models"
)

type dashboardView struct {
	User           models.User                    `json:"user"`
	Counts         map[models.ResourceKind]int    `json:"counts"`
	UnreadMessages int                            `json:"unreadMessages"`
	Errors         map[models.ResourceKind]string `json:"errors,omitempty"`
}

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the number of records per content type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}

			stats := rt.Services.Dashboard.Load(cmd.Context())
			view := dashboardView{
				User:           stats.User,
				Counts:         stats.Counts,
				UnreadMessages: stats.UnreadMessages,
			}
			if len(stats.Errors) > 0 {
				view.Errors = make(map[models.ResourceKind]string, len(stats.Errors))
				for kind, err := range stats.Errors {
					view.Errors[kind] = err.Error()
				}
			}

			return opts.output(cmd.OutOrStdout(), view, func() error {
				tr := rt.Translator
				w := cmd.OutOrStdout()

				fmt.Fprintln(w, tr.T("dashboard.greeting", stats.User.DisplayName()))

				rows := make([][]string, 0, len(models.AllResourceKinds()))
				for _, kind := range models.AllResourceKinds() {
					count := strconv.Itoa(stats.Counts[kind])
					if stats.Errors[kind] != nil {
						count = tr.T("dashboard.unavailable")
					}
					rows = append(rows, []string{tr.T("kind." + string(kind)), count})
				}
				if err := writeTable(w, []string{tr.T("dashboard.title"), "#"}, rows); err != nil {
					return err
				}

				_, err := fmt.Fprintln(w, tr.T("dashboard.unread", stats.UnreadMessages))
				return err
			})
		},
	}
}
