package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation settings of the client.
type ClientApp struct {
	// Locale is the UI language tag.
	Locale string
	// LogFile is the path of the JSON log; empty selects the default.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for a single backend request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups the secure session store settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Secret seals the stored values; empty selects a device-bound secret.
	Secret string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config for the given
// command-line arguments.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// LoadClientConfig builds the client config with overrides taking the place
// of command-line flags. It serves callers that parse their own flags, such
// as cobra commands.
func LoadClientConfig(overrides StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(overrides.EnvFilePath).
		withEnv().
		withOverrides(&overrides).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Locale:  cfg.App.Locale,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			Secret: cfg.Storage.Secret,
		},
	}

	return clientCfg, clientCfg.validate()
}
