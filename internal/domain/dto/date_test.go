package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-03-09"` {
		t.Fatalf("got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("want %v got %v", d, back)
	}

	if err := json.Unmarshal([]byte(`"09/03/2024"`), &back); err == nil {
		t.Fatalf("expected error for bad layout")
	}
}

func TestDailySales_AmountIsNumber(t *testing.T) {
	n := int64(2)
	row := DailySales{
		Date:             NewDate(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		TotalSales:       decimal.RequireFromString("249.99"),
		TransactionCount: &n,
	}
	b, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"date":"2024-01-02","totalSales":249.99,"transactionCount":2}`
	if string(b) != want {
		t.Fatalf("want %s got %s", want, b)
	}
}
