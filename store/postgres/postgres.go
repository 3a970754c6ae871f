// Package postgres provides a Store over a single kv table.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marquee-app/marquee/core"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ core.Store = (*Store)(nil)

// New ensures the kv table exists and returns the store. The single-table
// schema needs no migration machinery.
func New(pool *pgxpool.Pool) (*Store, error) {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (key text PRIMARY KEY, value bytea NOT NULL)`)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure kv table: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	ctx := context.Background()

	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(key string, value []byte) error {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}

func (s *Store) Delete(key string) error {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, `DELETE FROM kv WHERE key = $1`, key)
	return err
}
