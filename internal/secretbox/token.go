package secretbox

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// NonceSize is the size of the per-token random nonce in bytes.
	NonceSize = 16
	// TagSize is the size of the authentication tag in bytes.
	TagSize = 16

	delimiter  = ":"
	fieldCount = 3
)

// Token is a decoded sealed value.
type Token struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// String encodes the token as lowercase hex fields joined by ':'.
func (t Token) String() string {
	return strings.Join([]string{
		hex.EncodeToString(t.Nonce),
		hex.EncodeToString(t.Tag),
		hex.EncodeToString(t.Ciphertext),
	}, delimiter)
}

// ParseToken decodes s into a Token.
// The ciphertext field may be empty; nonce and tag must have their exact sizes.
func ParseToken(s string) (Token, error) {
	fields := strings.Split(s, delimiter)
	if len(fields) != fieldCount {
		return Token{}, fmt.Errorf("%w: expected %d fields separated by %q, got %d",
			ErrMalformedToken, fieldCount, delimiter, len(fields))
	}

	names := [fieldCount]string{"nonce", "tag", "ciphertext"}

	var decoded [fieldCount][]byte

	for i, field := range fields {
		b, err := hex.DecodeString(field)
		if err != nil {
			return Token{}, fmt.Errorf("%w: %s: %w", ErrDecoding, names[i], err)
		}

		decoded[i] = b
	}

	token := Token{Nonce: decoded[0], Tag: decoded[1], Ciphertext: decoded[2]}

	if len(token.Nonce) != NonceSize {
		return Token{}, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedToken, NonceSize, len(token.Nonce))
	}

	if len(token.Tag) != TagSize {
		return Token{}, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrMalformedToken, TagSize, len(token.Tag))
	}

	return token, nil
}
