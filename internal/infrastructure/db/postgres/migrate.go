package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Migrate runs the goose migrations in dir against the pool.
func Migrate(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool, dir string) error {
	if dir == "" {
		return fmt.Errorf("migrations dir is required")
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	logger.Info("migrations applied", zap.String("dir", dir))

	return nil
}
