package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserExists         = errors.New("email is already registered to another account")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrUnconfirmed        = errors.New("account is not confirmed, check your email to finish the process")
	ErrAlreadyConfirmed   = errors.New("account is already confirmed")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidAction      = errors.New("invalid action")
	ErrAlreadyOnTeam      = errors.New("user is already on the project")
	ErrNotOnTeam          = errors.New("user is not on the project")
)
