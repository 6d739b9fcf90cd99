package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/shoppulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

var (
	productHeaders  = []string{"id", "name", "category", "price", "stock_quantity"}
	saleHeaders     = []string{"product_id", "quantity", "total_amount", "sale_date", "customer_id", "status"}
	activityHeaders = []string{"user_id", "activity_type", "product_id", "activity_timestamp", "ip_address", "user_agent"}
)

// loadFile streams a semicolon separated fixture, parses every row with parse
// and hands full batches to flush. The header must match headers exactly
// (order and count); any malformed row fails the whole file.
func loadFile[T any](ctx context.Context, path string, headers []string, parse func([]string) (T, error), batch int, flush func(context.Context, []T) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1 // counted explicitly for better messages

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(headers) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(headers), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != headers[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, headers[i], h)
		}
	}

	buf := make([]T, 0, batch)
	send := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := flush(ctx, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	line, total := 1, 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != len(headers) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(headers), len(rec))
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		v, err := parse(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		buf = append(buf, v)
		total++

		if len(buf) >= batch {
			if err := send(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", line, err)
			}
		}
	}

	if err := send(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// parseProduct maps id;name;category;price;stock_quantity.
func parseProduct(rec []string) (models.Product, error) {
	var p models.Product
	var err error

	if p.ID, err = strconv.ParseInt(rec[0], 10, 64); err != nil || p.ID <= 0 {
		return p, fmt.Errorf("invalid id %q", rec[0])
	}
	if rec[1] == "" {
		return p, errors.New("name is required")
	}
	p.Name = rec[1]
	p.Category = rec[2]
	if p.Price, err = decimal.NewFromString(rec[3]); err != nil {
		return p, fmt.Errorf("invalid price: %w", err)
	}
	if p.StockQuantity, err = strconv.Atoi(rec[4]); err != nil {
		return p, fmt.Errorf("invalid stock_quantity: %w", err)
	}
	return p, nil
}

// parseSale maps product_id;quantity;total_amount;sale_date;customer_id;status.
// customer_id and status may be empty.
func parseSale(rec []string) (models.Sale, error) {
	var s models.Sale
	var err error

	if s.ProductID, err = strconv.ParseInt(rec[0], 10, 64); err != nil {
		return s, fmt.Errorf("invalid product_id: %w", err)
	}
	if s.Quantity, err = strconv.ParseInt(rec[1], 10, 64); err != nil {
		return s, fmt.Errorf("invalid quantity: %w", err)
	}
	if s.TotalAmount, err = decimal.NewFromString(rec[2]); err != nil {
		return s, fmt.Errorf("invalid total_amount: %w", err)
	}
	if s.SaleDate, err = parseTimestamp(rec[3]); err != nil {
		return s, fmt.Errorf("invalid sale_date: %w", err)
	}
	if rec[4] != "" {
		if s.CustomerID, err = strconv.ParseInt(rec[4], 10, 64); err != nil {
			return s, fmt.Errorf("invalid customer_id: %w", err)
		}
	}
	s.Status = rec[5]
	return s, nil
}

// parseActivity maps user_id;activity_type;product_id;activity_timestamp;ip_address;user_agent.
// product_id is empty for activities without a product (searches).
func parseActivity(rec []string) (models.UserActivity, error) {
	var a models.UserActivity
	var err error

	if a.UserID, err = strconv.ParseInt(rec[0], 10, 64); err != nil {
		return a, fmt.Errorf("invalid user_id: %w", err)
	}
	if rec[1] == "" {
		return a, errors.New("activity_type is required")
	}
	a.ActivityType = strings.ToUpper(rec[1])
	if rec[2] != "" {
		id, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return a, fmt.Errorf("invalid product_id: %w", err)
		}
		a.ProductID = &id
	}
	if a.Timestamp, err = parseTimestamp(rec[3]); err != nil {
		return a, fmt.Errorf("invalid activity_timestamp: %w", err)
	}
	a.IPAddress = rec[4]
	a.UserAgent = rec[5]
	return a, nil
}

// parseTimestamp reads an RFC 3339 timestamp and converts it to UTC.
// Columns are TIMESTAMP without zone, so the offset must be applied here.
func parseTimestamp(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
