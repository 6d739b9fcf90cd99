package analytics

import (
	"testing"

	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatusFor_Boundaries(t *testing.T) {
	cases := []struct {
		qty  int
		want dto.StockStatus
	}{
		{0, dto.StockLow},
		{19, dto.StockLow},
		{20, dto.StockMedium},
		{49, dto.StockMedium},
		{50, dto.StockAdequate},
		{1000, dto.StockAdequate},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StockStatusFor(tc.qty), "qty=%d", tc.qty)
	}
}

func TestClassifyInventory_KeepsInputOrder(t *testing.T) {
	products := []models.Product{
		{ID: 7, Name: "Chair", Category: "Furniture", StockQuantity: 100},
		{ID: 3, Name: "Laptop", Category: "Electronics", StockQuantity: 15},
		{ID: 5, Name: "Lamp", Category: "Home", StockQuantity: 20},
	}

	out := ClassifyInventory(products)

	require.Len(t, out, 3)
	assert.Equal(t, dto.InventoryStatus{ProductID: 7, ProductName: "Chair", Category: "Furniture", StockQuantity: 100, Status: dto.StockAdequate}, out[0])
	assert.Equal(t, dto.StockLow, out[1].Status)
	assert.Equal(t, dto.StockMedium, out[2].Status)
	assert.Empty(t, ClassifyInventory(nil))
}

func TestFilterLowStock_AlwaysTagsLow(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", StockQuantity: 45},
		{ID: 2, Name: "B", StockQuantity: 5},
		{ID: 3, Name: "C", StockQuantity: 50},
		{ID: 4, Name: "D", StockQuantity: 30},
		{ID: 5, Name: "E", StockQuantity: 5},
	}

	out := FilterLowStock(products, 50)

	require.Len(t, out, 4)
	wantIDs := []int64{2, 5, 4, 1}
	for i, row := range out {
		assert.Equal(t, wantIDs[i], row.ProductID)
		assert.Less(t, row.StockQuantity, 50)
		assert.Equal(t, dto.StockLow, row.Status)
	}
	// stock 30 and 45 would classify as MEDIUM elsewhere
	assert.Equal(t, dto.StockMedium, StockStatusFor(out[2].StockQuantity))
}

func TestFilterLowStock_Empty(t *testing.T) {
	out := FilterLowStock([]models.Product{{ID: 1, StockQuantity: 80}}, 50)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
