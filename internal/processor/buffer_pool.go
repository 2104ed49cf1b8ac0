package processor

import (
	"bufio"
	"io"
	"sync"

	"github.com/idelchi/sealr/internal/secretbox"
)

const (
	defaultBufferSize = 64 * 1024 // initial scanner buffer

	// MaxLineSize is the longest line accepted for sealing, terminator included.
	MaxLineSize = 4 << 20

	// MaxTokenLineSize is the longest line accepted for opening. It fits the token
	// of any line MaxLineSize admits: hex doubles the plaintext and adds the
	// hex nonce, hex tag and both delimiters.
	MaxTokenLineSize = 2*MaxLineSize + 2*(secretbox.NonceSize+secretbox.TagSize) + 2
)

// bufferPool provides reusable scanner buffers.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, defaultBufferSize)
	},
}

// LineLimit returns the longest input line accepted when sealing, or when opening if decrypt is set.
func LineLimit(decrypt bool) int {
	if decrypt {
		return MaxTokenLineSize
	}

	return MaxLineSize
}

// NewScanner returns a line scanner over r backed by a pooled buffer and limited to LineLimit(decrypt).
// The returned release func puts the buffer back and must be called once scanning is done.
func NewScanner(r io.Reader, decrypt bool) (*bufio.Scanner, func()) {
	buf, ok := bufferPool.Get().([]byte)
	if !ok {
		buf = make([]byte, defaultBufferSize)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(buf, LineLimit(decrypt))

	return scanner, func() { bufferPool.Put(buf) } //nolint:staticcheck
}
