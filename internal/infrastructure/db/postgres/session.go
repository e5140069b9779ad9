package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session is one scoped unit of work against the database. It is acquired for
// a single filter or repository call and must be released on every exit path.
type Session interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionSource hands out scoped sessions together with their release func.
type SessionSource interface {
	Acquire(ctx context.Context) (Session, func(), error)
}

type poolSource struct {
	pool *pgxpool.Pool
}

func NewSessionSource(pool *pgxpool.Pool) SessionSource {
	return &poolSource{pool: pool}
}

func (s *poolSource) Acquire(ctx context.Context) (Session, func(), error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Release, nil
}
