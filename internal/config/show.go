package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

const masked = "********"

// Display writes the configuration as YAML, with the secret masked.
func (c Config) Display(w io.Writer) error {
	if c.Secret != "" {
		c.Secret = masked
	}

	out, err := yaml.MarshalWithOptions(c, yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}
