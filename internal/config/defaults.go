package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAdapterAddress = "http://localhost:3000/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLocale         = "en-US"
	DefaultDBFileName     = "session.db"
	DefaultEnvFile        = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale: DefaultLocale,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN()},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// DefaultDSN places the session database in the user config directory, or
// the working directory when that cannot be determined.
func DefaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultDBFileName
	}
	return filepath.Join(dir, "sparknest", DefaultDBFileName)
}
