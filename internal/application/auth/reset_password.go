package auth

import (
	"context"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type ValidateResetTokenInput struct {
	Token string
}

type ValidateResetTokenResult struct{}

// ValidateResetToken is a lookup with no side effect, used by the client to
// gate showing the new-password form.
type ValidateResetToken struct {
	tokens ports.TokenRepository
}

func NewValidateResetToken(tokens ports.TokenRepository) *ValidateResetToken {
	return &ValidateResetToken{tokens: tokens}
}

func (uc *ValidateResetToken) Execute(ctx context.Context, input ValidateResetTokenInput) (*ValidateResetTokenResult, error) {
	token, err := uc.tokens.GetByHash(ctx, sha256Hash(input.Token), domain.PurposePasswordReset)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domerrors.ErrInvalidToken
	}
	return &ValidateResetTokenResult{}, nil
}

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

type ResetPasswordResult struct{}

// ResetPassword redeems a reset token: rehashes and stores the new password
// on the owning account and consumes the token.
type ResetPassword struct {
	tokens ports.TokenRepository
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewResetPassword(tokens ports.TokenRepository, users ports.UserRepository, hasher ports.PasswordHasher) *ResetPassword {
	return &ResetPassword{tokens: tokens, users: users, hasher: hasher}
}

func (uc *ResetPassword) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordResult, error) {
	hash := sha256Hash(input.Token)
	token, err := uc.tokens.GetByHash(ctx, hash, domain.PurposePasswordReset)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domerrors.ErrInvalidToken
	}
	newHash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := uc.users.UpdatePassword(ctx, token.UserID, newHash); err != nil {
		return nil, err
	}
	if err := uc.tokens.Delete(ctx, hash); err != nil {
		return nil, err
	}
	return &ResetPasswordResult{}, nil
}
