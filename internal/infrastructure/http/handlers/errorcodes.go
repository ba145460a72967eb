package handlers

import (
	"errors"
	"net/http"

	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeForbidden          = "forbidden"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeInternal           = "internal_error"
)

// writeDomainErr maps domain sentinels onto HTTP statuses. Returns false when
// the error is not a known sentinel, leaving the caller to log and 500.
func writeDomainErr(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domerrors.ErrUserExists),
		errors.Is(err, domerrors.ErrAlreadyConfirmed),
		errors.Is(err, domerrors.ErrAlreadyOnTeam),
		errors.Is(err, domerrors.ErrNotOnTeam):
		writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domerrors.ErrUserNotFound),
		errors.Is(err, domerrors.ErrAccountNotFound),
		errors.Is(err, domerrors.ErrTokenNotFound),
		errors.Is(err, domerrors.ErrProjectNotFound),
		errors.Is(err, domerrors.ErrTaskNotFound),
		errors.Is(err, domerrors.ErrNoteNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, domerrors.ErrInvalidToken):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidToken, err.Error())
	case errors.Is(err, domerrors.ErrUnconfirmed),
		errors.Is(err, domerrors.ErrInvalidAction):
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, err.Error())
	default:
		return false
	}
	return true
}
