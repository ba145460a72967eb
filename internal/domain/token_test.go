package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOneTimeTokenExpired(t *testing.T) {
	now := time.Now()
	token := &OneTimeToken{
		ID:        uuid.New(),
		UserID:    NewUserID(uuid.New()),
		Purpose:   PurposeConfirmation,
		ExpiresAt: now.Add(10 * time.Minute),
	}

	if token.Expired(now) {
		t.Error("token should not be expired before its window closes")
	}
	if !token.Expired(now.Add(11 * time.Minute)) {
		t.Error("token should be expired after its window closes")
	}
}
