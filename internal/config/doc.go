// Package config provides configuration loading, merging, and validation
// facilities for the SparkNest admin client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON, YAML or TOML)
//  3. .env file and environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for binaries parsing the
// standard flags and [LoadClientConfig] for callers with their own flag
// parsing.
package config
