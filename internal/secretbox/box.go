package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/tink-crypto/tink-go/v2/tink"
)

// Box seals and opens tokens with the key held by its Keyring.
// It is safe for concurrent use.
type Box struct {
	keyring *Keyring

	// rand is the nonce source.
	rand io.Reader

	aead  func() (cipher.AEAD, error)
	daead func() (tink.DeterministicAEAD, error)
}

// New creates a Box backed by keyring.
func New(keyring *Keyring) *Box {
	box := &Box{
		keyring: keyring,
		rand:    rand.Reader,
	}

	box.aead = sync.OnceValues(box.newAEAD)
	box.daead = sync.OnceValues(box.newDeterministicAEAD)

	return box
}

// Ready acquires the key without sealing anything, so configuration errors surface early.
func (b *Box) Ready() error {
	_, err := b.keyring.Key()

	return err
}

// Seal encrypts plaintext under a fresh random nonce and returns the token.
func (b *Box) Seal(plaintext string) (string, error) {
	aead, err := b.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(b.rand, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return Token{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}.String(), nil
}

// Open authenticates and decrypts token. On any failure no plaintext is returned.
func (b *Box) Open(token string) (string, error) {
	parsed, err := ParseToken(token)
	if err != nil {
		return "", err
	}

	aead, err := b.aead()
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(parsed.Ciphertext)+TagSize)
	sealed = append(sealed, parsed.Ciphertext...)
	sealed = append(sealed, parsed.Tag...)

	plaintext, err := aead.Open(nil, parsed.Nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return string(plaintext), nil
}

func (b *Box) newAEAD() (cipher.AEAD, error) {
	key, err := b.keyring.Key()
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return aead, nil
}
