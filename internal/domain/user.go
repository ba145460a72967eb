package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is a registered account. Password is stored hashed; the account stays
// unconfirmed until the emailed confirmation token is redeemed.
type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the trimmed user identity embedded in task histories, notes and
// team listings.
type UserRef struct {
	ID    UserID
	Name  string
	Email string
}

// Ref returns the trimmed identity of the user.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
