package config

import "os"

// Default values for configuration.
const (
	DefaultFormat        = "text"
	DefaultMaxBlockLines = 1000
)

// Environment variable names.
const (
	EnvFormat = "STACKPARSE_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Extract: ExtractConfig{
			MaxBlockLines: DefaultMaxBlockLines,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Output.Format = format
	}
}
