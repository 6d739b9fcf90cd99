package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/shoppulse/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const pingTimeout = 5 * time.Second

// sqlOpener is an indirection for unit testing; defaults to sql.Open.
var sqlOpener = sql.Open

// postgresOpener is used by InitializeApp and the CLI; tests override it.
var postgresOpener = InitPostgres

// InitPostgres opens the pool described by cfg.Postgres and pings it.
//
// cfg.Postgres.URL is used when set (LoadConfig always sets it); otherwise the
// DSN is assembled from the individual fields.
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := cfg.Postgres.URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Postgres.User,
			cfg.Postgres.Password,
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.DBName,
			cfg.Postgres.SSLMode,
		)
	}

	db, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// OpenPostgres is InitPostgres through the test indirection; used by the
// seed and migrate commands.
func OpenPostgres(cfg config.Config) (*sql.DB, error) {
	return postgresOpener(cfg)
}
