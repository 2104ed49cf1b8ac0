package secretbox

import (
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/sealr/internal/config"
)

// KeySize is the size of the sealing key in bytes.
const KeySize = sha256.Size

// Key is the 256-bit sealing key.
type Key [KeySize]byte

// Warner receives the warning emitted when a random key is generated.
type Warner interface {
	Warnf(msg string, args ...any)
}

// Options configures a Keyring.
type Options struct {
	// Secret is the operator-supplied secret. Any length and encoding.
	Secret string

	// Mode decides whether a missing Secret is fatal.
	Mode config.Mode

	// Logger receives the random-key warning. May be nil.
	Logger Warner

	// Rand is the entropy source for random keys. Defaults to crypto/rand.
	Rand io.Reader
}

// Keyring acquires the key on first use and returns the same key, or the same error,
// on every later call. It is safe for concurrent use.
type Keyring struct {
	load func() (Key, error)
}

// NewKeyring creates a Keyring. No key material is computed until Key is called.
func NewKeyring(opts Options) *Keyring {
	return &Keyring{
		load: sync.OnceValues(func() (Key, error) {
			return acquire(opts)
		}),
	}
}

// Key returns the key, acquiring it on the first call.
func (k *Keyring) Key() (Key, error) {
	return k.load()
}

// DeriveKey normalizes an arbitrary secret into a Key.
func DeriveKey(secret string) Key {
	return sha256.Sum256([]byte(secret))
}

func acquire(opts Options) (Key, error) {
	if opts.Secret != "" {
		return DeriveKey(opts.Secret), nil
	}

	if opts.Mode.IsProduction() {
		return Key{}, fmt.Errorf("%w: no secret configured in %s mode", ErrConfiguration, config.ModeProduction)
	}

	random, err := randomKey(opts.Rand)
	if err != nil {
		return Key{}, fmt.Errorf("generating random key: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Warnf(
			"no secret configured, using a random key in %s mode: tokens sealed now cannot be opened after this process exits",
			opts.Mode,
		)
	}

	return random, nil
}

// randomKey reads a Key from source, or from crypto/rand when source is nil.
func randomKey(source io.Reader) (Key, error) {
	var out Key

	if source != nil {
		_, err := io.ReadFull(source, out[:])

		return out, err
	}

	generated, err := key.New(KeySize)
	if err != nil {
		return Key{}, err
	}

	copy(out[:], generated)

	return out, nil
}
