package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set. A missing
// default file is not an error, a missing explicitly named one is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %s: %w", path, err)
}
