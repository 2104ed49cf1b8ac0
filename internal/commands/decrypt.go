package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// Without include patterns it picks up files ending in the sealed suffix.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Open every line of sealed files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return filesPreRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if done, err := show(cmd, cfg); done {
				return err
			}

			return logic.Run(cmd.Context(), cfg, newLogger(cmd, cfg), cmd.OutOrStdout())
		},
	}

	addFileFlags(cmd)

	return cmd
}
