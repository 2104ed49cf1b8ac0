package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [paths...]",
		Aliases: []string{"enc"},
		Short:   "Seal every line of the given files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: filesPreRun(cfg),
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
