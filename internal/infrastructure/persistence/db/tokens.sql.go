package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createToken = `
INSERT INTO tokens (id, user_id, token_hash, purpose, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())
`

type CreateTokenParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	Purpose   string
	ExpiresAt time.Time
}

func (q *Queries) CreateToken(ctx context.Context, arg CreateTokenParams) error {
	_, err := q.db.Exec(ctx, createToken,
		arg.ID, arg.UserID, arg.TokenHash, arg.Purpose, arg.ExpiresAt)
	return err
}

const getTokenByHash = `
SELECT id, user_id, token_hash, purpose, expires_at, created_at
FROM tokens
WHERE token_hash = $1 AND purpose = $2 AND expires_at > NOW()
`

type GetTokenByHashParams struct {
	TokenHash string
	Purpose   string
}

func (q *Queries) GetTokenByHash(ctx context.Context, arg GetTokenByHashParams) (Token, error) {
	row := q.db.QueryRow(ctx, getTokenByHash, arg.TokenHash, arg.Purpose)
	var t Token
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.Purpose, &t.ExpiresAt, &t.CreatedAt)
	return t, err
}

const deleteTokenByHash = `
DELETE FROM tokens WHERE token_hash = $1
`

func (q *Queries) DeleteTokenByHash(ctx context.Context, tokenHash string) error {
	_, err := q.db.Exec(ctx, deleteTokenByHash, tokenHash)
	return err
}

const deleteExpiredTokens = `
DELETE FROM tokens WHERE expires_at <= NOW()
`

func (q *Queries) DeleteExpiredTokens(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteExpiredTokens)
	return err
}
