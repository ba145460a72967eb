package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner opens transactions for the repositories that need multi-statement
// writes. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
