package analytics

import (
	"sort"

	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// GroupSalesByCategory sums TotalAmount per product category, ordered by
// the summed amount descending. Categories with equal sums keep the order in
// which they were first encountered.
//
// Sales whose product is missing from the lookup are ignored.
func GroupSalesByCategory(sales []models.Sale, products models.ProductLookup) []dto.CategorySales {
	type bucket struct {
		total    decimal.Decimal
		products map[int64]struct{}
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, s := range sales {
		p, ok := products[s.ProductID]
		if !ok {
			continue
		}
		b, ok := buckets[p.Category]
		if !ok {
			b = &bucket{total: decimal.Zero, products: make(map[int64]struct{})}
			buckets[p.Category] = b
			order = append(order, p.Category)
		}
		b.total = b.total.Add(s.TotalAmount)
		b.products[p.ID] = struct{}{}
	}

	out := make([]dto.CategorySales, 0, len(order))
	for _, category := range order {
		b := buckets[category]
		count := int64(len(b.products))
		out = append(out, dto.CategorySales{
			Category:     category,
			TotalSales:   b.total,
			ProductCount: &count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSales.GreaterThan(out[j].TotalSales)
	})
	return out
}

// RankProductsByQuantity ranks products by summed quantity sold and keeps the
// first limit entries. Percentages are computed against the quantity of all
// grouped products, before truncation.
func RankProductsByQuantity(sales []models.Sale, products models.ProductLookup, limit int) []dto.RankedProduct {
	g := newCountGroup()
	for _, s := range sales {
		if _, ok := products[s.ProductID]; !ok {
			continue
		}
		g.add(s.ProductID, s.Quantity)
	}
	return rank(g, products, limit)
}

// DailySalesSeries sums TotalAmount per calendar day of SaleDate (time of day
// dropped, in the timestamp's own location), ordered by date ascending.
func DailySalesSeries(sales []models.Sale) []dto.DailySales {
	type bucket struct {
		date  dto.Date
		total decimal.Decimal
		count int64
	}

	buckets := make(map[string]*bucket)
	for _, s := range sales {
		day := dto.NewDate(s.SaleDate)
		key := day.String()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{date: day, total: decimal.Zero}
			buckets[key] = b
		}
		b.total = b.total.Add(s.TotalAmount)
		b.count++
	}

	out := make([]dto.DailySales, 0, len(buckets))
	for _, b := range buckets {
		count := b.count
		out = append(out, dto.DailySales{
			Date:             b.date,
			TotalSales:       b.total,
			TransactionCount: &count,
		})
	}

	// keys are YYYY-MM-DD so lexical order is chronological
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.String() < out[j].Date.String()
	})
	return out
}

// SumTotalAmount returns the sum of TotalAmount, zero for an empty input.
func SumTotalAmount(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount)
	}
	return total
}

// SoldProductIDs returns the distinct product ids referenced by the sales, in
// first-seen order.
func SoldProductIDs(sales []models.Sale) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, s := range sales {
		if _, ok := seen[s.ProductID]; ok {
			continue
		}
		seen[s.ProductID] = struct{}{}
		ids = append(ids, s.ProductID)
	}
	return ids
}

// rank turns a product count group into a ranking: percentage over the full
// population, stable descending sort, truncation last.
func rank(g *countGroup, products models.ProductLookup, limit int) []dto.RankedProduct {
	if limit <= 0 {
		return []dto.RankedProduct{}
	}

	total := g.grandTotal()
	ranked := make([]dto.RankedProduct, 0, len(g.order))
	for _, id := range g.order {
		qty := g.totals[id]
		ranked = append(ranked, dto.RankedProduct{
			ProductName:       products[id].Name,
			QuantitySold:      qty,
			PercentageOfTotal: Percentage(qty, total),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
