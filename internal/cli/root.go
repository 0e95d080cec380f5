// Package cli provides the command-line interface for stackparse.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackparse/stackparse/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackparse",
		Short: "Parse captured stack traces into structured form",
		Long: `stackparse turns textual stack-trace dumps into structured frames and symbols.

It understands the conventional "stack backtrace:" dump format: numbered
frames with instruction pointers, resolved or unresolved symbols, and
"at <path>:<line>" source locations.

Use it to:
  - Inspect a captured trace file (parse)
  - Pull traces out of noisy application logs (extract)
  - Check a configuration file (validate)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
