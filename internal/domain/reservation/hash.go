package reservation

import (
	"crypto/rand"
	"encoding/hex"
)

// NewHash mints the capability token for unauthenticated confirmation
// and payment pages. Cryptographically random, never derived from the
// formal id.
func NewHash() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
