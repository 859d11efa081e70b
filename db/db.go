package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

func Connect(ctx context.Context, url string) (*Database, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Database{Pool: pool}, nil
}

func (d *Database) Close() {
	d.Pool.Close()
}

// EnsureSchema creates the tables the pipeline writes into.
func (d *Database) EnsureSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, createTables); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
