package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// DefaultOneTimeTokenTTL is the expiry window for emailed confirmation and
// password-reset tokens.
const DefaultOneTimeTokenTTL = 10 * time.Minute

// newOneTimeToken returns a fresh opaque token. Only its hash is stored.
func newOneTimeToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// sha256Hash returns the storage form of a one-time token.
func sha256Hash(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
