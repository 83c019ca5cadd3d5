package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// DefaultOutputPath writes the manifest to stdout
	DefaultOutputPath = "-"

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override, e.g. HIPPIE_OUTPUT_PATH
	EnvPrefix = "HIPPIE"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hippie"
	}
	return filepath.Join(home, ".hippie")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:      DefaultOutputPath,
			Overwrite: false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
