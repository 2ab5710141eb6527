package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectDB initializes the connection pool
func ConnectDB(databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the tables and id sequences if they don't exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			account_id     TEXT PRIMARY KEY,
			customer_id    TEXT NOT NULL,
			account_number TEXT NOT NULL,
			balance        DOUBLE PRECISION NOT NULL DEFAULT 0,
			currency       TEXT NOT NULL DEFAULT 'USD',
			status         TEXT NOT NULL DEFAULT 'ACTIVE',
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS transactions (
			transaction_id   TEXT PRIMARY KEY,
			account_id       TEXT NOT NULL,
			amount           DOUBLE PRECISION NOT NULL,
			transaction_type TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			status           TEXT NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL,
			completed_at     TIMESTAMPTZ
		);
		CREATE SEQUENCE IF NOT EXISTS account_id_seq;
		CREATE SEQUENCE IF NOT EXISTS transaction_id_seq;
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
