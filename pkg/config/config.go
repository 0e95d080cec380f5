package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if err := validateExtract(&cfg.Extract); err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	return nil
}

func validateOutput(out *OutputConfig) error {
	switch out.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (must be text or json)", out.Format)
	}

	if out.Verbose && out.Quiet {
		return errors.New("verbose and quiet are mutually exclusive")
	}

	return nil
}

func validateExtract(ext *ExtractConfig) error {
	if ext.MaxBlockLines <= 0 {
		ext.MaxBlockLines = DefaultMaxBlockLines
	}

	for i, src := range ext.Sources {
		if src == "" {
			return fmt.Errorf("sources[%d]: path or glob pattern must not be empty", i)
		}
	}

	return nil
}
