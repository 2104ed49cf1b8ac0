// Package config holds the runtime configuration for sealr.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// Mode is the runtime mode. It decides whether a missing secret is fatal.
type Mode string

const (
	// ModeProduction refuses to run without an explicit secret.
	ModeProduction Mode = "production"
	// ModeDevelopment falls back to a random, process-local key.
	ModeDevelopment Mode = "development"
	// ModeTest behaves like ModeDevelopment.
	ModeTest Mode = "test"
)

// IsProduction reports whether m is the production mode.
// The empty mode counts as production.
func (m Mode) IsProduction() bool {
	return m == ModeProduction || m == ""
}

// Suffixes holds the file extensions used for sealed and opened files.
type Suffixes struct {
	// Encrypt is appended to sealed files.
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to opened files, after stripping Encrypt.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config holds the application configuration.
type Config struct {
	// Secret is the operator-supplied secret the key is derived from.
	Secret string `label:"--secret" validate:"exclusive=--secret-file"`

	// SecretFile is a path to a file containing the secret.
	SecretFile string `label:"--secret-file" mapstructure:"secret-file" validate:"exclusive=--secret"`

	// Mode is the runtime mode.
	Mode Mode `label:"--mode" validate:"oneof=production development test"`

	// Parallel is the number of files processed concurrently.
	Parallel int `label:"--parallel" validate:"min=1"`

	// Show prints the configuration and exits.
	Show bool

	// Quiet suppresses non-error output.
	Quiet bool

	// Verbose enables informational log output.
	Verbose bool

	// Debug enables debug log output.
	Debug bool

	// Deterministic selects AES-SIV tokens instead of randomized ones.
	Deterministic bool

	// Decrypt is set by the open and decrypt commands.
	Decrypt bool `mapstructure:"-"`

	// Delete removes inputs after they were processed successfully.
	Delete bool

	// Dry lists what would be processed without writing anything.
	Dry bool

	// Stats prints a summary after processing.
	Stats bool

	// PreserveTimestamps copies the source modification time to outputs.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Include and Exclude are glob patterns applied to walked directories.
	Include     []string
	Exclude     []string
	IncludeFrom string `label:"--include-from" mapstructure:"include-from"`
	ExcludeFrom string `label:"--exclude-from" mapstructure:"exclude-from"`

	// Values are the positional arguments of the seal and open commands.
	Values []string `mapstructure:"-"`

	// Files are the positional arguments of the file commands.
	Files []string `mapstructure:"-"`
}

// Validate validates the configuration against the struct tags.
// All failures are reported together, each naming the offending flag.
func (c *Config) Validate() error {
	validate := validator.NewValidator()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if errs := validate.Validate(c); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w\nSee --help for more info on usage", errors.Join(errs...))
	}

	return nil
}

// ResolveSecret loads the secret from SecretFile, if one is set.
// Surrounding whitespace in the file is ignored.
func (c *Config) ResolveSecret() error {
	if c.SecretFile == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(c.SecretFile))
	if err != nil {
		return fmt.Errorf("reading secret file: %w", err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return fmt.Errorf("secret file %q is empty", c.SecretFile)
	}

	c.Secret = secret

	return nil
}
