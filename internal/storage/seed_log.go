package storage

import (
	"context"
	"database/sql"
)

// SeedLogRepository tracks which fixture files were already loaded.
type SeedLogRepository interface {
	HasSeed(ctx context.Context, filename string) (bool, error)
	UpsertSeedLog(ctx context.Context, filename string, rowCount int) error
	Truncate(ctx context.Context) error
}

type seedLogRepository struct {
	db *sql.DB
}

func NewSeedLogRepository(db *sql.DB) SeedLogRepository {
	return &seedLogRepository{db: db}
}

// HasSeed reports whether filename was already loaded.
func (r *seedLogRepository) HasSeed(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM seed_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertSeedLog records (or refreshes) a loaded file.
func (r *seedLogRepository) UpsertSeedLog(ctx context.Context, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seed_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  loaded_at = NOW()
	`, filename, rowCount)
	return err
}

// Truncate empties every analytics table and the seed log.
func (r *seedLogRepository) Truncate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `TRUNCATE sales, user_activities, products, seed_log RESTART IDENTITY CASCADE`)
	return err
}
