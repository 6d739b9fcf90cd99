//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guttosm/shoppulse/internal/domain/models"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "shoppulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=shoppulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	db, err := sql.Open("postgres", fmt.Sprintf("postgres://postgres:postgres@%s:%s/shoppulse?sslmode=disable", host, port.Port()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	if err := goose.Up(db, filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	products := NewProductRepository(db)
	sales := NewSaleRepository(db)
	activities := NewActivityRepository(db)

	err := products.InsertProductsBatch(ctx, []models.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: decimal.RequireFromString("1299.99"), StockQuantity: 50},
		{ID: 2, Name: "Office Chair", Category: "Furniture", Price: decimal.RequireFromString("249.99"), StockQuantity: 15},
		{ID: 3, Name: "Standing Desk", Category: "Furniture", Price: decimal.RequireFromString("499.00"), StockQuantity: 8},
	})
	if err != nil {
		t.Fatalf("insert products: %v", err)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	err = sales.InsertSalesBatch(ctx, []models.Sale{
		{ProductID: 1, Quantity: 1, TotalAmount: decimal.RequireFromString("1299.99"), SaleDate: start},
		{ProductID: 2, Quantity: 1, TotalAmount: decimal.RequireFromString("249.99"), SaleDate: end, CustomerID: 7},
		{ProductID: 2, Quantity: 1, TotalAmount: decimal.RequireFromString("249.99"), SaleDate: end.Add(time.Second)},
	})
	if err != nil {
		t.Fatalf("insert sales: %v", err)
	}

	pid := int64(1)
	err = activities.InsertActivitiesBatch(ctx, []models.UserActivity{
		{UserID: 1, ActivityType: models.ActivityView, ProductID: &pid, Timestamp: start},
		{UserID: 2, ActivityType: models.ActivitySearch, Timestamp: end.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	inWindow, err := sales.FindBetween(ctx, start, end)
	if err != nil {
		t.Fatalf("find sales: %v", err)
	}
	if len(inWindow) != 2 {
		t.Fatalf("window bounds are inclusive: want 2 sales, got %d", len(inWindow))
	}
	if inWindow[0].Status != models.SaleStatusCompleted || inWindow[1].CustomerID != 7 {
		t.Fatalf("unexpected sales: %+v", inWindow)
	}

	acts, err := activities.FindBetween(ctx, start, end)
	if err != nil || len(acts) != 1 || acts[0].ProductID == nil || *acts[0].ProductID != 1 {
		t.Fatalf("find activities: %+v err=%v", acts, err)
	}

	low, err := products.FindLowStock(ctx, 20)
	if err != nil || len(low) != 2 || low[0].ID != 3 {
		t.Fatalf("low stock: %+v err=%v", low, err)
	}

	byID, err := products.FindByIDs(ctx, []int64{2, 3})
	if err != nil || len(byID) != 2 || !byID[0].Price.Equal(decimal.RequireFromString("249.99")) {
		t.Fatalf("by ids: %+v err=%v", byID, err)
	}
}
