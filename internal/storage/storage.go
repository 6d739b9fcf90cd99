// Package storage implements the raw record providers on PostgreSQL.
//
// Reads are built with squirrel and executed through database/sql; bulk
// loads stream rows with pq.CopyIn inside a transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	pq "github.com/lib/pq"
)

// psql is the statement builder shared by every repository ($1, $2... placeholders).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// copyIn runs a COPY FROM STDIN for table/columns inside one transaction,
// feeding it the n rows produced by row.
func copyIn(ctx context.Context, db *sql.DB, table string, columns []string, n int, row func(i int) []any) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("copy %s row %d: %w", table, i, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// query builds and runs a squirrel SELECT.
func query(ctx context.Context, db *sql.DB, b squirrel.SelectBuilder) (*sql.Rows, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.QueryContext(ctx, q, args...)
}

// nullInt64 maps zero ids to NULL.
func nullInt64(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
