package secretbox

import (
	"fmt"

	"github.com/idelchi/gogen/pkg/key"
)

// GenerateSecret returns KeySize random bytes, hex encoded, suitable as a configured secret.
func GenerateSecret() (string, error) {
	secret, err := key.New(KeySize)
	if err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}

	return secret.AsHex(), nil
}
