package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateCapabilityHash returns the opaque token embedded in a webhook's
// anonymous execute URL. It is derived from crypto/rand so that a hash can
// not be guessed from the webhook it belongs to.
func GenerateCapabilityHash() (string, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return "", err
	}
	sum := sha256.Sum256(seed)
	return hex.EncodeToString(sum[:]), nil
}
