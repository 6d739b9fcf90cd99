package analytics

// Percentage returns 100*part/total, or 0 when total is not positive.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// countGroup accumulates an integer measure per key while remembering the
// order in which keys were first seen.
type countGroup struct {
	order  []int64
	totals map[int64]int64
}

func newCountGroup() *countGroup {
	return &countGroup{totals: make(map[int64]int64)}
}

func (g *countGroup) add(key, n int64) {
	if _, ok := g.totals[key]; !ok {
		g.order = append(g.order, key)
	}
	g.totals[key] += n
}

// grandTotal is the sum across every group, before any truncation.
func (g *countGroup) grandTotal() int64 {
	var sum int64
	for _, v := range g.totals {
		sum += v
	}
	return sum
}
