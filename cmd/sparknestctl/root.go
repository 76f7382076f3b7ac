package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/sparknest-admin/internal/client"
	"github.com/MKhiriev/sparknest-admin/internal/config"
	"github.com/MKhiriev/sparknest-admin/internal/crypto"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/models"
)

type runtimeFactory func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*client.Runtime, error)

// rootOptions holds the persistent flags and the runtime opened for the
// running command.
type rootOptions struct {
	buildInfo models.AppBuildInfo

	configPath string
	envFile    string
	address    string
	timeout    time.Duration
	dsn        string
	secret     string
	locale     string
	logFile    string
	jsonOutput bool
	verbose    bool

	newRuntime runtimeFactory
	runtime    *client.Runtime
}

func newRootOptions(buildInfo models.AppBuildInfo) *rootOptions {
	return &rootOptions{
		buildInfo: buildInfo,
		newRuntime: func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*client.Runtime, error) {
			return client.NewRuntime(ctx, cfg, crypto.NewKeyChainService(), log)
		},
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sparknestctl",
		Short: "Administer SparkNest website content from the command line",
		Long: `sparknestctl talks to the SparkNest REST backend with the same session
and services as the interactive client. The session is stored in the same
sealed database, so "sparknestctl login" also logs in the TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (.json, .yaml, .yml, .toml)")
	flags.StringVar(&opts.envFile, "env-file", "", ".env file path")
	flags.StringVarP(&opts.address, "address", "a", "", "Backend base URL")
	flags.DurationVar(&opts.timeout, "request-timeout", 0, "Backend request timeout (e.g. 15s)")
	flags.StringVarP(&opts.dsn, "db", "d", "", "Session database DSN")
	flags.StringVar(&opts.secret, "secret", "", "Session store secret")
	flags.StringVar(&opts.locale, "locale", "", "Message locale (en-US, fr-FR)")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newRegisterCmd(opts),
		newListCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newReadCmd(opts),
		newDashboardCmd(opts),
		newIconsCmd(opts),
		newVersionCmd(opts),
		newFakeBackendCmd(opts),
	)
	return cmd
}

// execute runs the command line args and releases the runtime afterwards,
// whatever the outcome.
func execute(ctx context.Context, opts *rootOptions, args []string) error {
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if closeErr := opts.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (o *rootOptions) overrides() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Locale:  o.locale,
			LogFile: o.logFile,
		},
		Storage: config.Storage{
			DB:     config.DB{DSN: o.dsn},
			Secret: o.secret,
		},
		Adapter: config.Adapter{
			HTTPAddress:    o.address,
			RequestTimeout: o.timeout,
		},
		ConfigFilePath: o.configPath,
		EnvFilePath:    o.envFile,
	}
}

func (o *rootOptions) logger(path string) *logger.Logger {
	if o.verbose {
		return logger.NewLogger("sparknestctl")
	}
	return logger.NewClientLogger("sparknestctl", path)
}

// open loads the configuration and wires the runtime with the persisted
// session restored. It is called by the commands that talk to the backend.
func (o *rootOptions) open(ctx context.Context) (*client.Runtime, error) {
	if o.runtime != nil {
		return o.runtime, nil
	}

	cfg, err := config.LoadClientConfig(o.overrides())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	rt, err := o.newRuntime(ctx, cfg, o.logger(cfg.App.LogFile))
	if err != nil {
		return nil, err
	}
	rt.Restore(ctx)

	o.runtime = rt
	return rt, nil
}

func (o *rootOptions) close() error {
	if o.runtime == nil {
		return nil
	}
	err := o.runtime.Close()
	o.runtime = nil
	return err
}
