package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenPurpose scopes a one-time token to a single flow.
type TokenPurpose string

const (
	PurposeConfirmation  TokenPurpose = "confirmation"
	PurposePasswordReset TokenPurpose = "password_reset"
)

// OneTimeToken is an opaque, storage-backed, single-use credential. The raw
// token is only ever emailed; storage holds its SHA-256 hash. Tokens are
// deleted on consumption, so no revocation list is needed.
type OneTimeToken struct {
	ID        uuid.UUID
	UserID    UserID
	Purpose   TokenPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry window.
func (t *OneTimeToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
