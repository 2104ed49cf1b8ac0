// Package commands provides the command-line interface for the sealr tool.
//
// It implements commands for:
//   - sealing and opening single values
//   - sealing and opening secret files line by line
//   - checking include/exclude patterns
//   - generating secrets
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/logging"
)

// filesPreRun returns a PreRunE handler that resolves positional args into cfg.Files.
func filesPreRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return nil
	}
}

// show prints the configuration when --show is set and reports whether it did.
func show(cmd *cobra.Command, cfg *config.Config) (bool, error) {
	if !cfg.Show {
		return false, nil
	}

	return true, cfg.Display(cmd.OutOrStdout())
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logging.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.Debug, cfg.Quiet)
}

func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("deterministic", "d", false, "Use deterministic (AES-SIV) tokens")
	cmd.Flags().Bool("delete", false, "Delete the original file after successful processing")
	cmd.Flags().Bool("dry", false, "Show which files would be processed and exit")
	cmd.Flags().Bool("stats", false, "Print a summary after processing")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the source modification time to outputs")
	cmd.Flags().String("encrypt-ext", ".sealed", "Suffix to append to sealed files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to opened files, after stripping the sealed suffix")
	addPatternFlags(cmd)
}

func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("include", "i", nil, "Glob patterns of files to include when walking directories")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Glob patterns of files to exclude when walking directories")
	cmd.Flags().String("include-from", "", "JSONC file with include patterns")
	cmd.Flags().String("exclude-from", "", "JSONC file with exclude patterns")
}
