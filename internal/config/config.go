// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An explicit path passed by the caller (the --config flag)
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//
// When neither is given, the conventional config/local.yaml is tried so the
// tool works out of the box from a checked-out repository.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is used when no config path is supplied at all.
const DefaultPath = "config/local.yaml"

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to fail at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// DataFile is the filesystem path of the flat file every record lives in.
	// The whole collection is rewritten on each mutation.
	DataFile string `yaml:"data_file" env:"DATA_FILE" env-required:"true"`

	// StorageFormat selects the on-disk encoding of DataFile: "json" or "xml".
	// The storage factory rejects anything else at startup.
	StorageFormat string `yaml:"storage_format" env:"STORAGE_FORMAT" env-required:"true"`

	// LogFile is where slog output goes. The containing directory is
	// created on demand.
	LogFile string `yaml:"log_file" env:"LOG_FILE" env-default:"logs/app.log"`

	// TimestampFormat is the Go reference layout used for the created_at /
	// updated_at fields of every record.
	TimestampFormat string `yaml:"timestamp_format" env:"TIMESTAMP_FORMAT" env-default:"2006-01-02 15:04:05"`
}

// Load reads, validates, and returns the application config.
//
// path may be empty, in which case the CONFIG_PATH environment variable and
// then DefaultPath are consulted. Unlike a Must-style loader this returns an
// error so the CLI layer can surface it per command instead of exiting hard.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}

	// Verify the file exists before trying to read it — cleanenv's own
	// "open: no such file" is less helpful than naming the fix.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf(
			"config file does not exist: %s (use --config or CONFIG_PATH)", path)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It also reads any env:"..." tagged fields from the environment,
	// and validates env-required:"true" constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	return &cfg, nil
}
