package auth

import (
	"context"
	"errors"
	"testing"

	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	uc := NewUpdateProfile(users)

	if _, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Name:   "Diego R",
		Email:  "diego.r@example.com",
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	updated, err := users.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if updated.Name != "Diego R" || updated.Email != "diego.r@example.com" {
		t.Errorf("profile not updated: %+v", updated)
	}
}

func TestUpdateProfileKeepingOwnEmail(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	uc := NewUpdateProfile(users)

	// Re-submitting your own email is not a conflict.
	if _, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Name:   "Diego R",
		Email:  "diego@example.com",
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	seedUser(t, users, "taken@example.com", true)
	uc := NewUpdateProfile(users)

	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		UserID: user.ID,
		Name:   "Diego",
		Email:  "taken@example.com",
	})
	if !errors.Is(err, domerrors.ErrUserExists) {
		t.Errorf("got %v, want ErrUserExists", err)
	}
}

func TestChangePassword(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	uc := NewChangePassword(users, fakeHasher{})

	_, err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new password",
	})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong current password: got %v, want ErrInvalidCredentials", err)
	}

	if _, err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "password123",
		NewPassword:     "new password",
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	updated, err := users.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if updated.PasswordHash != "hashed:new password" {
		t.Errorf("password not rotated, hash is %q", updated.PasswordHash)
	}
}

func TestCheckPassword(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	uc := NewCheckPassword(users, fakeHasher{})

	if _, err := uc.Execute(context.Background(), CheckPasswordInput{
		UserID:   user.ID,
		Password: "password123",
	}); err != nil {
		t.Fatalf("correct password: %v", err)
	}

	_, err := uc.Execute(context.Background(), CheckPasswordInput{
		UserID:   user.ID,
		Password: "wrong",
	})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}
