package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/sealr/internal/secretbox"
)

// NewGenerateCommand creates a new cobra command that prints a fresh random secret.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a random secret for SEALR_SECRET",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := secretbox.GenerateSecret()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), secret)

			return nil
		},
	}
}
