package secretbox_test

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/sealr/internal/secretbox"
)

func TestDeterministicRoundTrip(t *testing.T) {
	t.Parallel()

	box := newBox(t, "deterministic")

	for _, plaintext := range []string{"", "hello world", "a:b:c", "ünïcödé"} {
		token, err := box.SealDeterministic(plaintext)
		if err != nil {
			t.Fatalf("SealDeterministic(%q) error: %v", plaintext, err)
		}

		if strings.Contains(token, ":") {
			t.Errorf("deterministic token %q contains a delimiter", token)
		}

		again, err := box.SealDeterministic(plaintext)
		if err != nil {
			t.Fatalf("SealDeterministic(%q) error: %v", plaintext, err)
		}

		if token != again {
			t.Errorf("SealDeterministic(%q) not stable: %q != %q", plaintext, token, again)
		}

		got, err := box.OpenDeterministic(token)
		if err != nil {
			t.Fatalf("OpenDeterministic(%q) error: %v", token, err)
		}

		if got != plaintext {
			t.Errorf("OpenDeterministic = %q, want %q", got, plaintext)
		}
	}
}

func TestDeterministicDistinct(t *testing.T) {
	t.Parallel()

	box := newBox(t, "deterministic")

	a, err := box.SealDeterministic("a")
	if err != nil {
		t.Fatal(err)
	}

	b, err := box.SealDeterministic("b")
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Error("different plaintexts sealed to the same token")
	}

	other, err := newBox(t, "other").SealDeterministic("a")
	if err != nil {
		t.Fatal(err)
	}

	if a == other {
		t.Error("different secrets sealed to the same token")
	}
}

func TestDeterministicRejects(t *testing.T) {
	t.Parallel()

	box := newBox(t, "deterministic")

	token, err := box.SealDeterministic("secret value")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatal(err)
	}

	raw[len(raw)-1] ^= 0x01

	if _, err := box.OpenDeterministic(hex.EncodeToString(raw)); !errors.Is(err, secretbox.ErrAuthentication) {
		t.Errorf("tampered: err = %v, want ErrAuthentication", err)
	}

	if _, err := box.OpenDeterministic("not hex"); !errors.Is(err, secretbox.ErrDecoding) {
		t.Errorf("not hex: err = %v, want ErrDecoding", err)
	}

	if _, err := newBox(t, "other").OpenDeterministic(token); !errors.Is(err, secretbox.ErrAuthentication) {
		t.Errorf("other key: err = %v, want ErrAuthentication", err)
	}

	// The randomized format never accepts deterministic tokens.
	if _, err := box.Open(token); !errors.Is(err, secretbox.ErrMalformedToken) {
		t.Errorf("Open(deterministic) err = %v, want ErrMalformedToken", err)
	}
}
