package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/sealr/internal/config"
)

// EnvPrefix is the prefix of all environment variables read by sealr.
const EnvPrefix = "SEALR"

// NewRootCommand creates the root command with common configuration.
// Flags and SEALR_* environment variables are bound into cfg and validated before any subcommand runs.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "sealr [flags] command [flags]"
	root.Short = "Seal secrets into authenticated tokens"
	root.Long = `Seal short secrets into authenticated tokens and open them again.

Tokens have the form <nonce>:<tag>:<ciphertext>, hex encoded, sealed with AES-256-GCM
under a key derived from SEALR_SECRET. In production mode a secret is required;
in development and test modes a random, process-local key is used instead.`

	root.SilenceErrors = true
	root.SilenceUsage = true

	flags := root.PersistentFlags()

	flags.StringP("secret", "k", "", "Secret to derive the key from")
	flags.StringP("secret-file", "f", "", "Path to a file containing the secret")
	flags.StringP("mode", "m", string(config.ModeProduction), "Runtime mode: production, development or test")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("verbose", false, "Show informational output")
	flags.Bool("debug", false, "Show debug output")

	// Replaces the default hook. Flags bind into a viper instance per execution, not the global one.
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return bind(cmd, cfg)
	}

	root.AddCommand(
		NewSealCommand(cfg),
		NewOpenCommand(cfg),
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewCheckCommand(cfg),
		NewGenerateCommand(),
	)

	return root
}

// bind loads flags and environment variables into cfg and validates it.
func bind(cmd *cobra.Command, cfg *config.Config) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return cfg.Validate()
}
