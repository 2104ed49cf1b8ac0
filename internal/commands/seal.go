package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/config"
	"github.com/idelchi/sealr/internal/logic"
)

// NewSealCommand creates a new cobra command for the seal subcommand.
func NewSealCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal [flags] [values...]",
		Short: "Seal values into tokens",
		Long:  "Seal each value into a token, one per line. Without values, each line of stdin is sealed.",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Values = args

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if done, err := show(cmd, cfg); done {
				return err
			}

			return logic.RunValues(cfg, newLogger(cmd, cfg), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolP("deterministic", "d", false, "Use deterministic (AES-SIV) tokens")

	return cmd
}

// NewOpenCommand creates a new cobra command for the open subcommand.
func NewOpenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [flags] [tokens...]",
		Short: "Open tokens back into values",
		Long:  "Open each token, one value per line. Without tokens, each line of stdin is opened.",
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Values = args
			cfg.Decrypt = true

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if done, err := show(cmd, cfg); done {
				return err
			}

			return logic.RunValues(cfg, newLogger(cmd, cfg), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolP("deterministic", "d", false, "Open deterministic (AES-SIV) tokens")

	return cmd
}
