package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/internal/fakebackend"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
)

func newFakeBackendCmd(opts *rootOptions) *cobra.Command {
	var (
		addr    string
		backend fakebackend.Options
	)

	cmd := &cobra.Command{
		Use:   "fake-backend",
		Short: "Run an in-memory SparkNest backend for local development",
		Long: `Run an in-memory implementation of the SparkNest REST API. With --seed it
starts with demo content and the account admin@sparknest.dev / sparknest.
Nothing is persisted; stop it with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("fakebackend")
			if !opts.verbose {
				log = logger.Nop()
			}

			h, err := fakebackend.NewHandler(backend, log)
			if err != nil {
				return fmt.Errorf("create fake backend: %w", err)
			}

			return fakebackend.NewServer(addr, h, log).Run(cmd.Context(), func(bound string) {
				fmt.Fprintf(cmd.OutOrStdout(), "fake backend listening on http://%s%s\n", bound, backend.Prefix)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:3000", "Listen address")
	cmd.Flags().StringVar(&backend.Prefix, "prefix", "/api", "Path prefix of the API")
	cmd.Flags().BoolVar(&backend.Seed, "seed", true, "Load demo content and the admin account")
	cmd.Flags().StringVar(&backend.SignKey, "sign-key", "", "JWT signing key (a development key when empty)")
	cmd.Flags().DurationVar(&backend.TokenTTL, "token-ttl", 24*time.Hour, "Lifetime of issued tokens")
	return cmd
}
