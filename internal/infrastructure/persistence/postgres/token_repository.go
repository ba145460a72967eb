package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
)

// TokenRepository implements ports.TokenRepository. Tokens are stored hashed;
// expired rows are invisible to GetByHash and reaped opportunistically.
type TokenRepository struct {
	q *db.Queries
}

func NewTokenRepository(q *db.Queries) *TokenRepository {
	return &TokenRepository{q: q}
}

func (r *TokenRepository) Create(ctx context.Context, userID domain.UserID, purpose domain.TokenPurpose, tokenHash string, expiresAt time.Time) error {
	return r.q.CreateToken(ctx, db.CreateTokenParams{
		ID:        uuid.New(),
		UserID:    userID.UUID,
		TokenHash: tokenHash,
		Purpose:   string(purpose),
		ExpiresAt: expiresAt,
	})
}

func (r *TokenRepository) GetByHash(ctx context.Context, tokenHash string, purpose domain.TokenPurpose) (*domain.OneTimeToken, error) {
	t, err := r.q.GetTokenByHash(ctx, db.GetTokenByHashParams{
		TokenHash: tokenHash,
		Purpose:   string(purpose),
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &domain.OneTimeToken{
		ID:        t.ID,
		UserID:    domain.NewUserID(t.UserID),
		Purpose:   domain.TokenPurpose(t.Purpose),
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}, nil
}

func (r *TokenRepository) Delete(ctx context.Context, tokenHash string) error {
	return r.q.DeleteTokenByHash(ctx, tokenHash)
}

// ReapExpired removes expired rows; called periodically from main.
func (r *TokenRepository) ReapExpired(ctx context.Context) error {
	return r.q.DeleteExpiredTokens(ctx)
}

// Ensure TokenRepository implements ports.TokenRepository.
var _ ports.TokenRepository = (*TokenRepository)(nil)
