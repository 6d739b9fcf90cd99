package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/guttosm/shoppulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// ProductReader supplies product rows to the reporting facade.
type ProductReader interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindLowStock(ctx context.Context, threshold int) ([]models.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
}

// ProductRepository adds the bulk load used by the seeder.
type ProductRepository interface {
	ProductReader
	InsertProductsBatch(ctx context.Context, products []models.Product) error
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

var productColumns = []string{"id", "name", "category", "price", "stock_quantity"}

// FindAll returns every product ordered by id.
func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, psql.Select(productColumns...).From("products").OrderBy("id ASC"))
}

// FindLowStock returns products with stock_quantity < threshold, lowest stock first.
func (r *productRepository) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	return r.find(ctx, psql.Select(productColumns...).
		From("products").
		Where(squirrel.Lt{"stock_quantity": threshold}).
		OrderBy("stock_quantity ASC", "id ASC"))
}

// FindByIDs returns the products with the given ids. No ids → no query.
func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.find(ctx, psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC"))
}

func (r *productRepository) find(ctx context.Context, b squirrel.SelectBuilder) ([]models.Product, error) {
	rows, err := query(ctx, r.db, b)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		var price decimal.NullDecimal
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &p.StockQuantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Price = price.Decimal
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// InsertProductsBatch bulk-loads products keeping their ids, so that sales and
// activities loaded afterwards can reference them.
func (r *productRepository) InsertProductsBatch(ctx context.Context, products []models.Product) error {
	return copyIn(ctx, r.db, "products", productColumns, len(products), func(i int) []any {
		p := products[i]
		return []any{p.ID, p.Name, p.Category, p.Price.String(), p.StockQuantity}
	})
}
