package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSONC file holding an array of glob patterns.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

// Merge combines inline patterns with those loaded from file, if set.
func Merge(inline []string, file string) ([]string, error) {
	patterns := append([]string{}, inline...)

	if file == "" {
		return patterns, nil
	}

	loaded, err := LoadPatterns(file)
	if err != nil {
		return nil, err
	}

	return append(patterns, loaded...), nil
}
