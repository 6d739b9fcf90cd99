package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/service"
	"github.com/shopspring/decimal"
)

// mockAnalytics records the last arguments it was called with.
type mockAnalytics struct {
	err error

	start, end time.Time
	limit      int
	threshold  int
	called     string
}

var _ service.AnalyticsService = (*mockAnalytics)(nil)

func (m *mockAnalytics) record(op string, start, end time.Time) {
	m.called, m.start, m.end = op, start, end
}

func (m *mockAnalytics) SalesByCategory(_ context.Context, start, end time.Time) ([]dto.CategorySales, error) {
	m.record("SalesByCategory", start, end)
	return []dto.CategorySales{{Category: "Electronics", TotalSales: decimal.RequireFromString("2599.98")}}, m.err
}

func (m *mockAnalytics) TopSellingProducts(_ context.Context, start, end time.Time, limit int) ([]dto.RankedProduct, error) {
	m.record("TopSellingProducts", start, end)
	m.limit = limit
	return []dto.RankedProduct{{ProductName: "Laptop", QuantitySold: 2, PercentageOfTotal: 66.66666666666667}}, m.err
}

func (m *mockAnalytics) DailySales(_ context.Context, start, end time.Time) ([]dto.DailySales, error) {
	m.record("DailySales", start, end)
	return []dto.DailySales{}, m.err
}

func (m *mockAnalytics) TotalSales(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	m.record("TotalSales", start, end)
	return decimal.RequireFromString("2849.97"), m.err
}

func (m *mockAnalytics) InventoryStatus(_ context.Context) ([]dto.InventoryStatus, error) {
	m.called = "InventoryStatus"
	return []dto.InventoryStatus{{ProductID: 2, ProductName: "Office Chair", Category: "Furniture", StockQuantity: 15, Status: dto.StockLow}}, m.err
}

func (m *mockAnalytics) LowStockProducts(_ context.Context, threshold int) ([]dto.InventoryStatus, error) {
	m.called = "LowStockProducts"
	m.threshold = threshold
	return []dto.InventoryStatus{}, m.err
}

func (m *mockAnalytics) ActivitySummary(_ context.Context, start, end time.Time) ([]dto.ActivitySummary, error) {
	m.record("ActivitySummary", start, end)
	return []dto.ActivitySummary{}, m.err
}

func (m *mockAnalytics) MostViewedProducts(_ context.Context, start, end time.Time, limit int) ([]dto.RankedProduct, error) {
	m.record("MostViewedProducts", start, end)
	m.limit = limit
	return []dto.RankedProduct{}, m.err
}

func (m *mockAnalytics) UniqueUsers(_ context.Context, start, end time.Time) (int64, error) {
	m.record("UniqueUsers", start, end)
	return 42, m.err
}

func (m *mockAnalytics) Overview(_ context.Context, start, end time.Time, threshold int) (*dto.Overview, error) {
	m.record("Overview", start, end)
	m.threshold = threshold
	if m.err != nil {
		return nil, m.err
	}
	return &dto.Overview{StartDate: dto.NewDate(start), EndDate: dto.NewDate(end), TotalSales: decimal.RequireFromString("10.5")}, nil
}

var testDefaults = ReportDefaults{Limit: 10, Threshold: 50, WindowDays: 30}

func setupRouterWithMock(s service.AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, testDefaults)
	h.now = func() time.Time { return time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC) }
	r := gin.New()
	h.Register(r)
	return r
}

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestHandlers_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		query  string
		status int
		assert func(t *testing.T, m *mockAnalytics, body []byte)
	}{
		{
			name:   "sales by category",
			query:  "/api/analytics/sales/by-category?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, body []byte) {
				if !m.start.Equal(day(2024, 1, 1)) || !m.end.Equal(day(2024, 1, 31)) {
					t.Fatalf("unexpected window %v..%v", m.start, m.end)
				}
				if string(body) != `[{"category":"Electronics","totalSales":2599.98}]` {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "default window is the last 30 days",
			query:  "/api/analytics/sales/daily",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, _ []byte) {
				if !m.start.Equal(day(2024, 3, 1)) || !m.end.Equal(day(2024, 3, 31)) {
					t.Fatalf("unexpected default window %v..%v", m.start, m.end)
				}
			},
		},
		{
			name:   "only one date",
			query:  "/api/analytics/sales/daily?startDate=2024-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid date format",
			query:  "/api/analytics/sales/daily?startDate=2024/01/01&endDate=2024-01-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid end date",
			query:  "/api/analytics/sales/daily?startDate=2024-01-01&endDate=tomorrow",
			status: http.StatusBadRequest,
		},
		{
			name:   "end before start",
			query:  "/api/analytics/sales/daily?startDate=2024-02-01&endDate=2024-01-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "single day window",
			query:  "/api/analytics/sales/daily?startDate=2024-01-31&endDate=2024-01-31",
			status: http.StatusOK,
		},
		{
			name:   "top products default limit",
			query:  "/api/analytics/sales/top-products?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, body []byte) {
				if m.limit != 10 {
					t.Fatalf("limit=%d, want 10", m.limit)
				}
				var out []dto.RankedProduct
				if err := json.Unmarshal(body, &out); err != nil || len(out) != 1 || out[0].ProductName != "Laptop" {
					t.Fatalf("unexpected body: %s (%v)", body, err)
				}
			},
		},
		{
			name:   "top products explicit limit",
			query:  "/api/analytics/sales/top-products?startDate=2024-01-01&endDate=2024-01-31&limit=3",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, _ []byte) {
				if m.limit != 3 {
					t.Fatalf("limit=%d, want 3", m.limit)
				}
			},
		},
		{
			name:   "zero limit rejected",
			query:  "/api/analytics/sales/top-products?limit=0",
			status: http.StatusBadRequest,
		},
		{
			name:   "non numeric limit rejected",
			query:  "/api/analytics/user-activity/most-viewed?limit=ten",
			status: http.StatusBadRequest,
		},
		{
			name:   "total sales is a bare number",
			query:  "/api/analytics/sales/total?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockAnalytics, body []byte) {
				if string(body) != "2849.97" {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "inventory status",
			query:  "/api/analytics/inventory/status",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockAnalytics, body []byte) {
				want := `[{"productId":2,"productName":"Office Chair","category":"Furniture","stockQuantity":15,"status":"LOW"}]`
				if string(body) != want {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "low stock default threshold",
			query:  "/api/analytics/inventory/low-stock",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, body []byte) {
				if m.threshold != 50 || string(body) != "[]" {
					t.Fatalf("threshold=%d body=%s", m.threshold, body)
				}
			},
		},
		{
			name:   "negative threshold rejected",
			query:  "/api/analytics/inventory/low-stock?threshold=-5",
			status: http.StatusBadRequest,
		},
		{
			name:   "activity summary",
			query:  "/api/analytics/user-activity/summary?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusOK,
		},
		{
			name:   "most viewed",
			query:  "/api/analytics/user-activity/most-viewed?startDate=2024-01-01&endDate=2024-01-31&limit=5",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, _ []byte) {
				if m.called != "MostViewedProducts" || m.limit != 5 {
					t.Fatalf("called=%s limit=%d", m.called, m.limit)
				}
			},
		},
		{
			name:   "unique users is a bare number",
			query:  "/api/analytics/user-activity/unique-users?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, _ *mockAnalytics, body []byte) {
				if string(body) != "42" {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "overview",
			query:  "/api/analytics/overview?startDate=2024-01-01&endDate=2024-01-31&threshold=20",
			status: http.StatusOK,
			assert: func(t *testing.T, m *mockAnalytics, body []byte) {
				if m.threshold != 20 {
					t.Fatalf("threshold=%d, want 20", m.threshold)
				}
				var out map[string]any
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out["startDate"] != "2024-01-01" || out["totalSales"] != 10.5 {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "service error",
			err:    errors.New("db down"),
			query:  "/api/analytics/sales/by-category?startDate=2024-01-01&endDate=2024-01-31",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, _ *mockAnalytics, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Message != "failed to compute sales by category" || out.ErrorDetails != "db down" {
					t.Fatalf("unexpected error body: %+v", out)
				}
			},
		},
		{
			name:   "overview service error",
			err:    errors.New("db down"),
			query:  "/api/analytics/overview",
			status: http.StatusInternalServerError,
		},
		{
			name:   "inventory service error",
			err:    errors.New("db down"),
			query:  "/api/analytics/inventory/status",
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockAnalytics{err: tc.err}
			r := setupRouterWithMock(m)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))

			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusBadRequest && m.called != "" {
				t.Fatalf("service must not be called on invalid input, got %s", m.called)
			}
			if tc.assert != nil {
				tc.assert(t, m, w.Body.Bytes())
			}
		})
	}
}
