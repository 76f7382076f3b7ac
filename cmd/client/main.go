package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sparknest-admin/internal/client"
	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.NewFlagSet(os.Stderr).Usage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the TUI, the log goes to a file
	log := logger.NewClientLogger("sparknest-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting client")

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
	}
}
