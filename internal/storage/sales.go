package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/guttosm/shoppulse/internal/domain/models"
)

// SaleReader supplies the sales of a timestamp window.
type SaleReader interface {
	FindBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

// SaleRepository adds the bulk load used by the seeder.
type SaleRepository interface {
	SaleReader
	InsertSalesBatch(ctx context.Context, sales []models.Sale) error
}

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

var saleColumns = []string{"id", "product_id", "quantity", "total_amount", "sale_date", "customer_id", "status"}

// FindBetween returns sales with start <= sale_date <= end, oldest first.
func (r *saleRepository) FindBetween(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	b := psql.Select(saleColumns...).
		From("sales").
		Where(squirrel.Expr("sale_date BETWEEN ? AND ?", start, end)).
		OrderBy("sale_date ASC", "id ASC")

	rows, err := query(ctx, r.db, b)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var s models.Sale
		var customer sql.NullInt64
		var status sql.NullString
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.TotalAmount, &s.SaleDate, &customer, &status); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.CustomerID = customer.Int64
		s.Status = status.String
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}

// InsertSalesBatch bulk-loads sales; ids come from the table sequence.
func (r *saleRepository) InsertSalesBatch(ctx context.Context, sales []models.Sale) error {
	columns := saleColumns[1:]
	return copyIn(ctx, r.db, "sales", columns, len(sales), func(i int) []any {
		s := sales[i]
		status := s.Status
		if status == "" {
			status = models.SaleStatusCompleted
		}
		return []any{s.ProductID, s.Quantity, s.TotalAmount.String(), s.SaleDate, nullInt64(s.CustomerID), status}
	})
}
