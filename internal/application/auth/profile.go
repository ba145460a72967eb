package auth

import (
	"context"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type UpdateProfileInput struct {
	UserID domain.UserID
	Name   string
	Email  string
}

type UpdateProfileResult struct{}

// UpdateProfile changes name and email for the authenticated user. The new
// email must not belong to a different account.
type UpdateProfile struct {
	users ports.UserRepository
}

func NewUpdateProfile(users ports.UserRepository) *UpdateProfile {
	return &UpdateProfile{users: users}
}

func (uc *UpdateProfile) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileResult, error) {
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != input.UserID {
		return nil, domerrors.ErrUserExists
	}
	if err := uc.users.UpdateProfile(ctx, input.UserID, input.Name, input.Email); err != nil {
		return nil, err
	}
	return &UpdateProfileResult{}, nil
}

type ChangePasswordInput struct {
	UserID          domain.UserID
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordResult struct{}

// ChangePassword rotates the password for the authenticated user after
// verifying the current one.
type ChangePassword struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewChangePassword(users ports.UserRepository, hasher ports.PasswordHasher) *ChangePassword {
	return &ChangePassword{users: users, hasher: hasher}
}

func (uc *ChangePassword) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordResult, error) {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if !uc.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	newHash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := uc.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
		return nil, err
	}
	return &ChangePasswordResult{}, nil
}

type CheckPasswordInput struct {
	UserID   domain.UserID
	Password string
}

type CheckPasswordResult struct{}

// CheckPassword verifies the authenticated user's password without changing
// anything (used to gate destructive client actions).
type CheckPassword struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewCheckPassword(users ports.UserRepository, hasher ports.PasswordHasher) *CheckPassword {
	return &CheckPassword{users: users, hasher: hasher}
}

func (uc *CheckPassword) Execute(ctx context.Context, input CheckPasswordInput) (*CheckPasswordResult, error) {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	return &CheckPasswordResult{}, nil
}
