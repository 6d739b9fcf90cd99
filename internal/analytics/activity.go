package analytics

import (
	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/domain/models"
)

// SummarizeActivityByType counts activities per type. Rows follow the order in
// which each type first appears; percentages are over the total count.
func SummarizeActivityByType(activities []models.UserActivity) []dto.ActivitySummary {
	var order []string
	counts := make(map[string]int64)
	for _, a := range activities {
		if _, ok := counts[a.ActivityType]; !ok {
			order = append(order, a.ActivityType)
		}
		counts[a.ActivityType]++
	}

	total := int64(len(activities))
	out := make([]dto.ActivitySummary, 0, len(order))
	for _, typ := range order {
		out = append(out, dto.ActivitySummary{
			ActivityType: typ,
			Count:        counts[typ],
			Percentage:   Percentage(counts[typ], total),
		})
	}
	return out
}

// RankViewedProducts ranks products by number of VIEW activities and keeps the
// first limit entries. Percentages are over all VIEW activities that reference
// a known product, computed before truncation.
func RankViewedProducts(activities []models.UserActivity, products models.ProductLookup, limit int) []dto.RankedProduct {
	g := newCountGroup()
	for _, a := range activities {
		if a.ActivityType != models.ActivityView || a.ProductID == nil {
			continue
		}
		if _, ok := products[*a.ProductID]; !ok {
			continue
		}
		g.add(*a.ProductID, 1)
	}
	return rank(g, products, limit)
}

// CountUniqueUsers returns the number of distinct user ids.
func CountUniqueUsers(activities []models.UserActivity) int64 {
	seen := make(map[int64]struct{}, len(activities))
	for _, a := range activities {
		seen[a.UserID] = struct{}{}
	}
	return int64(len(seen))
}

// ReferencedProductIDs returns the distinct product ids referenced by the
// activities, in first-seen order.
func ReferencedProductIDs(activities []models.UserActivity) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, a := range activities {
		if a.ProductID == nil {
			continue
		}
		if _, ok := seen[*a.ProductID]; ok {
			continue
		}
		seen[*a.ProductID] = struct{}{}
		ids = append(ids, *a.ProductID)
	}
	return ids
}
