package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG persists slots as rows in a single Postgres table, one JSONB
// document per collection.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG creates a Postgres-backed slot store.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// EnsureSchema creates the collections table if it does not exist.
func (p *PG) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			key        text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`
	if _, err := p.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create collections table: %w", err)
	}
	return nil
}

// Load reads one slot's JSON document.
func (p *PG) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT data FROM collections WHERE key = $1`

	var data []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSlot
		}
		return nil, fmt.Errorf("load slot %q: %w", key, err)
	}
	return data, nil
}

// Save overwrites one slot's JSON document.
func (p *PG) Save(ctx context.Context, key string, data []byte) error {
	const query = `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	if _, err := p.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("save slot %q: %w", key, err)
	}
	return nil
}
