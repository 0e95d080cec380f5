package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackparse/stackparse/pkg/backtrace"
	"github.com/stackparse/stackparse/pkg/config"
	"github.com/stackparse/stackparse/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output  string
	Config  string
	Verbose bool
	Quiet   bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <trace-file>",
		Short: "Parse a captured stack trace",
		Long: `Parse a textual stack-trace dump into structured frames and symbols.

Reads the trace from the given file, or from stdin when the file is "-".
The whole input must be one well-formed trace; any structural mismatch is
reported with its byte offset and nothing is produced.

Exit codes:
  0 - Trace parsed successfully
  1 - Input is not a well-formed trace
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with output defaults")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include parse metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no frame listing")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	tracePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}
	mergeOutputFlags(cfg, opts.Output, opts.Verbose, opts.Quiet)

	formatter, err := createFormatter(cfg)
	if err != nil {
		return err
	}

	data, source, err := readTrace(tracePath)
	if err != nil {
		return err
	}

	start := time.Now()
	bt, err := backtrace.Parse(data)
	if err != nil {
		// A malformed trace is a finding, not a runtime error.
		fmt.Fprintf(os.Stderr, "%s: %v\n", source, err)
		ExitCode = 1
		return nil
	}

	report := output.NewReport(bt, source)
	report.Metadata.Duration = time.Since(start)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// readTrace reads the whole trace from a file, or from stdin for "-".
func readTrace(path string) (data string, source string, err error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(raw), "<stdin>", nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- user-provided trace path is expected
	if err != nil {
		return "", "", fmt.Errorf("reading trace file: %w", err)
	}
	return string(raw), path, nil
}

// loadConfig loads the given config file, or defaults when none is given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeOutputFlags lets command-line flags override config file values.
func mergeOutputFlags(cfg *config.Config, format string, verbose, quiet bool) {
	if format != "" {
		cfg.Output.Format = format
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if quiet {
		cfg.Output.Quiet = true
	}
}

func createFormatter(cfg *config.Config) (output.Formatter, error) {
	formatter, ok := output.NewFormatter(cfg.Output.Format, output.FormatOptions{
		Verbose: cfg.Output.Verbose,
		Quiet:   cfg.Output.Quiet,
	})
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (use text or json)", cfg.Output.Format)
	}
	return formatter, nil
}
