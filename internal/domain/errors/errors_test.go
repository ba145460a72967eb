package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrUserExists == nil {
		t.Error("ErrUserExists should not be nil")
	}
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
	if ErrProjectNotFound == nil {
		t.Error("ErrProjectNotFound should not be nil")
	}
	if ErrInvalidToken == ErrTokenNotFound {
		t.Error("token sentinels must be distinct")
	}
}
