package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackparse/stackparse/pkg/backtrace"
	"github.com/stackparse/stackparse/pkg/detector"
	"github.com/stackparse/stackparse/pkg/output"
)

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	Output        string
	Config        string
	MaxBlockLines int
	Verbose       bool
	Quiet         bool
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [log-file|glob]...",
		Short: "Extract and parse stack traces embedded in logs",
		Long: `Scan log files for embedded "stack backtrace:" dumps, parse each one,
and report the structured result.

Log prefixes on the header line (timestamps, levels) are stripped; the
trace block runs until the first line that is not a frame, symbol, or
location line. Files may be given as paths or glob patterns; when no
arguments are given, the sources from the config file are used.

Exit codes:
  0 - At least one trace found, all traces well-formed
  1 - No traces found, or some traces malformed
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with sources and defaults")
	cmd.Flags().IntVar(&opts.MaxBlockLines, "max-block-lines", 0, "Cap on lines per extracted trace")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include parse metadata in reports")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no frame listings")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}
	mergeOutputFlags(cfg, opts.Output, opts.Verbose, opts.Quiet)
	if opts.MaxBlockLines > 0 {
		cfg.Extract.MaxBlockLines = opts.MaxBlockLines
	}

	formatter, err := createFormatter(cfg)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Extract.Sources
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no log files given (pass paths or set extract.sources in the config)")
	}

	files, err := detector.ExpandGlobs(patterns)
	if err != nil {
		return fmt.Errorf("expanding log sources: %w", err)
	}

	d := detector.New(detector.WithMaxBlockLines(cfg.Extract.MaxBlockLines))

	parsed := 0
	malformed := 0
	for _, file := range files {
		result, err := d.DetectFromFile(ctx, file)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", file, err)
		}

		for _, block := range result.Blocks {
			source := fmt.Sprintf("%s:%d", block.Source, block.StartLine)

			start := time.Now()
			bt, err := backtrace.Parse(block.Text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", source, err)
				malformed++
				continue
			}

			report := output.NewReport(bt, source)
			report.Metadata.Duration = time.Since(start)

			if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("formatting output: %w", err)
			}
			parsed++
		}
	}

	if parsed == 0 || malformed > 0 {
		if parsed == 0 && malformed == 0 {
			fmt.Fprintln(os.Stderr, "no stack traces found")
		}
		ExitCode = 1
	}

	return nil
}
