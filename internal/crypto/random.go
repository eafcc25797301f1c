package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Reader is the default randomness source. crypto/rand.Reader is safe for
// concurrent use.
var Reader io.Reader = rand.Reader

// RandomBytes reads n bytes from r, or from Reader when r is nil.
func RandomBytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
