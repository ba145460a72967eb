package auth

import (
	"context"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type ConfirmAccountInput struct {
	Token string
}

type ConfirmAccountResult struct{}

// ConfirmAccount redeems a confirmation token: marks the owning account
// confirmed and consumes the token, so a second redemption fails.
type ConfirmAccount struct {
	tokens ports.TokenRepository
	users  ports.UserRepository
}

func NewConfirmAccount(tokens ports.TokenRepository, users ports.UserRepository) *ConfirmAccount {
	return &ConfirmAccount{tokens: tokens, users: users}
}

func (uc *ConfirmAccount) Execute(ctx context.Context, input ConfirmAccountInput) (*ConfirmAccountResult, error) {
	hash := sha256Hash(input.Token)
	token, err := uc.tokens.GetByHash(ctx, hash, domain.PurposeConfirmation)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domerrors.ErrTokenNotFound
	}
	if err := uc.users.SetConfirmed(ctx, token.UserID); err != nil {
		return nil, err
	}
	if err := uc.tokens.Delete(ctx, hash); err != nil {
		return nil, err
	}
	return &ConfirmAccountResult{}, nil
}
