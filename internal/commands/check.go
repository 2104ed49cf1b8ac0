package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] [paths...]",
		Short:   "Validate that include/exclude patterns match files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: filesPreRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if done, err := show(cmd, cfg); done {
				return err
			}

			return logic.RunCheck(cfg, cmd.ErrOrStderr())
		},
	}

	addPatternFlags(cmd)

	return cmd
}
