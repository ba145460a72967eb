package auth

import (
	"context"
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

// DefaultSessionExpiry is the session credential lifetime in seconds.
const DefaultSessionExpiry = 604800 // 7 days

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	SessionToken string
	User         *domain.User
}

// Login authenticates an account and issues a session credential. An
// unconfirmed account never gets a session: it gets a fresh confirmation
// token emailed and a distinct "unconfirmed" failure.
type Login struct {
	users      ports.UserRepository
	tokens     ports.TokenRepository
	hasher     ports.PasswordHasher
	issuer     ports.SessionIssuer
	enqueuer   ports.EmailEnqueuer
	sessionExp int64
	tokenTTL   time.Duration
}

func NewLogin(users ports.UserRepository, tokens ports.TokenRepository, hasher ports.PasswordHasher, issuer ports.SessionIssuer, enqueuer ports.EmailEnqueuer, sessionExp int64, tokenTTL time.Duration) *Login {
	if sessionExp <= 0 {
		sessionExp = DefaultSessionExpiry
	}
	if tokenTTL <= 0 {
		tokenTTL = DefaultOneTimeTokenTTL
	}
	return &Login{
		users:      users,
		tokens:     tokens,
		hasher:     hasher,
		issuer:     issuer,
		enqueuer:   enqueuer,
		sessionExp: sessionExp,
		tokenTTL:   tokenTTL,
	}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrAccountNotFound
	}
	if !user.Confirmed {
		raw, err := newOneTimeToken()
		if err != nil {
			return nil, err
		}
		expiresAt := time.Now().Add(uc.tokenTTL)
		if err := uc.tokens.Create(ctx, user.ID, domain.PurposeConfirmation, sha256Hash(raw), expiresAt); err != nil {
			return nil, err
		}
		_ = uc.enqueuer.EnqueueConfirmationEmail(ctx, user.Name, user.Email, raw)
		return nil, domerrors.ErrUnconfirmed
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	session, err := uc.issuer.IssueSession(user.ID.String(), uc.sessionExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{SessionToken: session, User: user}, nil
}
