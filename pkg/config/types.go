// Package config provides configuration loading and validation for stackparse.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Extract ExtractConfig `yaml:"extract"`
}

// OutputConfig sets report rendering defaults. Command-line flags override
// these values.
type OutputConfig struct {
	// Format selects the report renderer: text or json.
	Format string `yaml:"format"`

	// Verbose includes per-symbol detail and run metadata in reports.
	Verbose bool `yaml:"verbose,omitempty"`

	// Quiet restricts reports to the summary line.
	Quiet bool `yaml:"quiet,omitempty"`
}

// ExtractConfig controls how traces are located in log files.
type ExtractConfig struct {
	// Sources are file paths or glob patterns to scan when the extract
	// command is given no arguments.
	Sources []string `yaml:"sources,omitempty"`

	// MaxBlockLines caps how many lines one extracted trace may span.
	MaxBlockLines int `yaml:"max_block_lines,omitempty"`
}
