package fursan_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository is the document-store driver. It owns no state beyond the
// injected pool and is safe for concurrent use.
type Repository struct {
	pool DBPool
}

func NewRepository(pool DBPool) *Repository {
	if pool == nil {
		return nil
	}
	return &Repository{pool: pool}
}
