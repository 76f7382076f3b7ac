package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a backend base URL, e.g. http://localhost:3000/api
//	-request-timeout backend request timeout (e.g. "15s")
//	-d session database DSN
//	-secret passphrase sealing the stored session
//	-locale UI locale (en-US, fr-FR)
//	-log-file log file path
//	-c/-config config file path (.json, .yaml, .yml, .toml)
//	-env-file .env file path
//
// flag.ErrHelp is returned unwrapped when -h is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagSet(newFlagSet(io.Discard), args)
}

// NewFlagSet returns the flag set used by ParseFlags writing its usage to w.
func NewFlagSet(w io.Writer) *flag.FlagSet {
	return newFlagSet(w)
}

func newFlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sparknest", flag.ContinueOnError)
	fs.SetOutput(w)

	fs.String("a", "", "Backend base URL")
	fs.Duration("request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.String("d", "", "Session database DSN")
	fs.String("secret", "", "Session store secret")
	fs.String("locale", "", "UI locale (en-US, fr-FR)")
	fs.String("log-file", "", "Log file path")
	fs.String("c", "", "Config file path")
	fs.String("config", "", "Config file path (alias)")
	fs.String("env-file", "", ".env file path")

	return fs
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	get := func(name string) string {
		if f := fs.Lookup(name); f != nil {
			return f.Value.String()
		}
		return ""
	}

	var timeout time.Duration
	if f := fs.Lookup("request-timeout"); f != nil {
		if getter, ok := f.Value.(flag.Getter); ok {
			timeout, _ = getter.Get().(time.Duration)
		}
	}

	configPath := get("c")
	if alias := get("config"); alias != "" {
		configPath = alias
	}

	return &StructuredConfig{
		App: App{
			Locale:  get("locale"),
			LogFile: get("log-file"),
		},
		Storage: Storage{
			DB:     DB{DSN: get("d")},
			Secret: get("secret"),
		},
		Adapter: Adapter{
			HTTPAddress:    get("a"),
			RequestTimeout: timeout,
		},
		ConfigFilePath: configPath,
		EnvFilePath:    get("env-file"),
	}, nil
}
