package config

import "github.com/mook/hippie/internal/utils"

// Config represents the application configuration
type Config struct {
	Output     OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Descriptor string        `mapstructure:"descriptor" yaml:"descriptor"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Path      string `mapstructure:"path" yaml:"path"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate replaces unusable values with their defaults
func (c *Config) Validate() error {
	if !utils.IsValidLogLevel(c.Logging.Level) {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	c.Output.Path = utils.ExpandHome(c.Output.Path)
	c.Descriptor = utils.ExpandHome(c.Descriptor)
	return nil
}
