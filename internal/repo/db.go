package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maartz/huffman-encoding/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS archives (
  id               TEXT PRIMARY KEY,
  name             TEXT NOT NULL,
  original_size    INTEGER NOT NULL,
  compressed_size  INTEGER NOT NULL,
  distinct_symbols INTEGER NOT NULL,
  ratio            DOUBLE PRECISION NOT NULL,
  created_at       TIMESTAMPTZ NOT NULL,
  data             BYTEA NOT NULL
)`)
	return err
}

type archiveRepoPG struct {
	pool *pgxpool.Pool
}

var _ ArchiveRepo = (*archiveRepoPG)(nil)

func NewArchiveRepoPG(pool *pgxpool.Pool) ArchiveRepo {
	return &archiveRepoPG{pool: pool}
}

func (r *archiveRepoPG) Save(ctx context.Context, a *model.Archive) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO archives (id, name, original_size, compressed_size, distinct_symbols, ratio, created_at, data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  original_size = EXCLUDED.original_size,
  compressed_size = EXCLUDED.compressed_size,
  distinct_symbols = EXCLUDED.distinct_symbols,
  ratio = EXCLUDED.ratio,
  data = EXCLUDED.data`,
		a.ID, a.Name, a.OriginalSize, a.CompressedSize, a.DistinctSymbols, a.Ratio, a.CreatedAt, a.Data)
	if err != nil {
		return fmt.Errorf("save archive %s: %w", a.ID, err)
	}
	return nil
}

func (r *archiveRepoPG) FindByID(ctx context.Context, id string) (*model.Archive, error) {
	a := &model.Archive{}
	err := r.pool.QueryRow(ctx, `
SELECT id, name, original_size, compressed_size, distinct_symbols, ratio, created_at, data
FROM archives WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.DistinctSymbols, &a.Ratio, &a.CreatedAt, &a.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find archive %s: %w", id, err)
	}
	return a, nil
}

// List는 메타데이터만 (data 컬럼 제외)
func (r *archiveRepoPG) List(ctx context.Context) ([]*model.Archive, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, original_size, compressed_size, distinct_symbols, ratio, created_at
FROM archives ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Archive, 0)
	for rows.Next() {
		a := &model.Archive{}
		if err := rows.Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.DistinctSymbols, &a.Ratio, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan archive: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
