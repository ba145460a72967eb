package auth

import (
	"context"
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type ForgotPasswordInput struct {
	Email string
}

type ForgotPasswordResult struct{}

// ForgotPassword issues a password-reset token and enqueues the reset email.
// Works regardless of confirmation state.
type ForgotPassword struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	enqueuer ports.EmailEnqueuer
	tokenTTL time.Duration
}

func NewForgotPassword(users ports.UserRepository, tokens ports.TokenRepository, enqueuer ports.EmailEnqueuer, tokenTTL time.Duration) *ForgotPassword {
	if tokenTTL <= 0 {
		tokenTTL = DefaultOneTimeTokenTTL
	}
	return &ForgotPassword{users: users, tokens: tokens, enqueuer: enqueuer, tokenTTL: tokenTTL}
}

func (uc *ForgotPassword) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrAccountNotFound
	}
	raw, err := newOneTimeToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(uc.tokenTTL)
	if err := uc.tokens.Create(ctx, user.ID, domain.PurposePasswordReset, sha256Hash(raw), expiresAt); err != nil {
		return nil, err
	}
	_ = uc.enqueuer.EnqueuePasswordResetEmail(ctx, user.Name, user.Email, raw)
	return &ForgotPasswordResult{}, nil
}
