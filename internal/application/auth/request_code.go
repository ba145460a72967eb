package auth

import (
	"context"
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type RequestConfirmationCodeInput struct {
	Email string
}

type RequestConfirmationCodeResult struct{}

// RequestConfirmationCode reissues a confirmation token for an unconfirmed
// account. Already-confirmed accounts get a conflict.
type RequestConfirmationCode struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	enqueuer ports.EmailEnqueuer
	tokenTTL time.Duration
}

func NewRequestConfirmationCode(users ports.UserRepository, tokens ports.TokenRepository, enqueuer ports.EmailEnqueuer, tokenTTL time.Duration) *RequestConfirmationCode {
	if tokenTTL <= 0 {
		tokenTTL = DefaultOneTimeTokenTTL
	}
	return &RequestConfirmationCode{users: users, tokens: tokens, enqueuer: enqueuer, tokenTTL: tokenTTL}
}

func (uc *RequestConfirmationCode) Execute(ctx context.Context, input RequestConfirmationCodeInput) (*RequestConfirmationCodeResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrAccountNotFound
	}
	if user.Confirmed {
		return nil, domerrors.ErrAlreadyConfirmed
	}
	raw, err := newOneTimeToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(uc.tokenTTL)
	if err := uc.tokens.Create(ctx, user.ID, domain.PurposeConfirmation, sha256Hash(raw), expiresAt); err != nil {
		return nil, err
	}
	_ = uc.enqueuer.EnqueueConfirmationEmail(ctx, user.Name, user.Email, raw)
	return &RequestConfirmationCodeResult{}, nil
}
