package secretbox

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"google.golang.org/protobuf/proto"

	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"
)

const (
	// sivKeySize is the AES-SIV key size Tink expects (two AES-256 keys).
	sivKeySize = 64

	sivKeyInfo = "sealr/deterministic"
	sivTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"
)

// deterministicAD binds deterministic tokens to this use.
var deterministicAD = []byte("sealr/v1") //nolint:gochecknoglobals

// SealDeterministic encrypts plaintext so that equal plaintexts give equal tokens.
// The token is the hex encoded AES-SIV output and has no delimiters.
func (b *Box) SealDeterministic(plaintext string) (string, error) {
	primitive, err := b.daead()
	if err != nil {
		return "", err
	}

	ciphertext, err := primitive.EncryptDeterministically([]byte(plaintext), deterministicAD)
	if err != nil {
		return "", fmt.Errorf("encrypting deterministically: %w", err)
	}

	return hex.EncodeToString(ciphertext), nil
}

// OpenDeterministic reverses SealDeterministic.
func (b *Box) OpenDeterministic(token string) (string, error) {
	ciphertext, err := hex.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	primitive, err := b.daead()
	if err != nil {
		return "", err
	}

	plaintext, err := primitive.DecryptDeterministically(ciphertext, deterministicAD)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return string(plaintext), nil
}

func (b *Box) newDeterministicAEAD() (tink.DeterministicAEAD, error) {
	key, err := b.keyring.Key()
	if err != nil {
		return nil, err
	}

	subkey, err := deriveSIVKey(key)
	if err != nil {
		return nil, err
	}

	handle, err := newSIVKeysetHandle(subkey)
	if err != nil {
		return nil, err
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating DeterministicAEAD: %w", err)
	}

	return primitive, nil
}

// deriveSIVKey expands the sealing key into an independent AES-SIV key.
func deriveSIVKey(key Key) ([]byte, error) {
	reader := hkdf.New(sha256.New, key[:], nil, []byte(sivKeyInfo))

	subkey := make([]byte, sivKeySize)
	if _, err := io.ReadFull(reader, subkey); err != nil {
		return nil, fmt.Errorf("deriving deterministic key: %w", err)
	}

	return subkey, nil
}

// newSIVKeysetHandle wraps raw AES-SIV key bytes into a single-key Tink keyset.
// RAW output prefix keeps the ciphertext free of Tink key-id headers.
func newSIVKeysetHandle(raw []byte) (*keyset.Handle, error) {
	serializedKey, err := proto.Marshal(&aes_sivpb.AesSivKey{
		Version:  0,
		KeyValue: raw,
	})
	if err != nil {
		return nil, fmt.Errorf("serializing AesSivKey: %w", err)
	}

	serializedKeyset, err := proto.Marshal(&tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         sivTypeURL,
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	return handle, nil
}
