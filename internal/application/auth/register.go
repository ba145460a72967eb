package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	User *domain.User
}

// RegisterUser creates an unconfirmed account plus its confirmation token and
// enqueues the confirmation email. The email send is best-effort: a queue
// failure never aborts account creation.
type RegisterUser struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	hasher   ports.PasswordHasher
	enqueuer ports.EmailEnqueuer
	tokenTTL time.Duration
}

func NewRegisterUser(users ports.UserRepository, tokens ports.TokenRepository, hasher ports.PasswordHasher, enqueuer ports.EmailEnqueuer, tokenTTL time.Duration) *RegisterUser {
	if tokenTTL <= 0 {
		tokenTTL = DefaultOneTimeTokenTTL
	}
	return &RegisterUser{users: users, tokens: tokens, hasher: hasher, enqueuer: enqueuer, tokenTTL: tokenTTL}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error) {
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Confirmed:    false,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
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
	return &RegisterUserResult{User: user}, nil
}
