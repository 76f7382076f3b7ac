package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version of sparknestctl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := opts.buildInfo
			view := map[string]string{
				"version": info.BuildVersion(),
				"date":    info.BuildDate(),
				"commit":  info.BuildCommit(),
			}
			return opts.output(cmd.OutOrStdout(), view, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "sparknestctl version %s (%s, %s)\n",
					info.BuildVersion(), info.BuildCommit(), info.BuildDate())
				return err
			})
		},
	}
}
