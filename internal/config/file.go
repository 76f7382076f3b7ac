package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// not .json, .yaml, .yml or .toml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// StructuredFileConfig is the on-disk layout of the config file. The same
// field names are used for every supported format.
type StructuredFileConfig struct {
	App struct {
		Locale  string `json:"locale" yaml:"locale" toml:"locale"`
		LogFile string `json:"log_file" yaml:"log_file" toml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty" toml:"app,omitempty"`

	Storage struct {
		DSN    string `json:"dsn" yaml:"dsn" toml:"dsn"`
		Secret string `json:"secret" yaml:"secret" toml:"secret"`
	} `json:"storage,omitempty" yaml:"storage,omitempty" toml:"storage,omitempty"`

	Adapter struct {
		Address        string   `json:"address" yaml:"address" toml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty" toml:"adapter,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			Locale:  fileCfg.App.Locale,
			LogFile: fileCfg.App.LogFile,
		},
		Storage: Storage{
			DB:     DB{DSN: fileCfg.Storage.DSN},
			Secret: fileCfg.Storage.Secret,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.Address,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in JSON, YAML and TOML. Plain JSON numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}
