// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// SparkNest admin client. It aggregates all sub-configurations and is
// populated by merging values from defaults, an optional config file, a
// .env file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings: UI locale and log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the secure session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before the environment is read.
	// Only settable by flag; defaults to ".env" in the working directory.
	EnvFilePath string
}

// App holds client presentation settings.
type App struct {
	// Locale is the BCP 47 tag of the UI language (e.g. "en-US", "fr-FR").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// LogFile is where the client writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the settings of the secure session store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Secret is the passphrase the stored values are sealed with.
	// Env: STORAGE_SECRET
	Secret string `env:"SECRET"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (or file: URI).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the backend connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the SparkNest REST API
	// (e.g. "http://192.168.1.20:3000/api"). A bare host:port gets http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend round trip (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration for the given
// command-line arguments. Priority, lowest first:
//  1. built-in defaults
//  2. config file (path resolved from the sources below)
//  3. .env file and environment variables
//  4. command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, err
	}

	return newConfigBuilder().
		withDefaults().
		withDotEnv(flags.EnvFilePath).
		withEnv().
		withOverrides(flags).
		withFile().
		build()
}
