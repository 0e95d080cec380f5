package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackparse/stackparse/pkg/config"
	"github.com/stackparse/stackparse/pkg/detector"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a stackparse configuration file.

Checks:
  - YAML syntax
  - Output format value
  - Extract source patterns
  - Log source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Output format:   %s\n", cfg.Output.Format)
	fmt.Fprintf(out, "  Extract sources: %d pattern(s)\n", len(cfg.Extract.Sources))
	fmt.Fprintf(out, "  Max block lines: %d\n", cfg.Extract.MaxBlockLines)

	// Check if log sources exist (warnings only)
	if len(cfg.Extract.Sources) > 0 {
		files, err := detector.ExpandGlobs(cfg.Extract.Sources)
		if err != nil {
			fmt.Fprintf(out, "\nWarning: Error expanding source patterns: %v\n", err)
		} else if len(files) == 0 {
			fmt.Fprintf(out, "\nWarning: No files match source patterns\n")
		} else {
			fmt.Fprintf(out, "\nLog files matched: %d\n", len(files))
			for _, f := range files {
				fmt.Fprintf(out, "  - %s\n", f)
			}
		}
	}

	return nil
}
