package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// Hex generates opaque random hex strings, used for correlation handles
// handed to clients (e.g. verification request IDs).
type Hex struct {
	bytes int
}

// NewHex returns a generator producing 2*n hex characters from n random bytes.
func NewHex(n int) *Hex {
	if n <= 0 {
		n = 16
	}

	return &Hex{bytes: n}
}

// Generate returns a new random hex string.
func (h *Hex) Generate() string {
	b := make([]byte, h.bytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is unrecoverable for an ID source.
		panic(err)
	}

	return hex.EncodeToString(b)
}
