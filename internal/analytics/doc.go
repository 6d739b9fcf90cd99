// Package analytics holds the aggregation engine: pure transformations from
// raw sales, product and activity records into ranked, summed and
// percentage-normalized report rows.
//
// Every function is deterministic and free of side effects, so callers may
// invoke them concurrently over disjoint inputs without synchronization.
//
// Pipeline discipline for rankings: group, compute the grand total over all
// groups, derive percentages, sort, and only then truncate to the limit.
// Percentages therefore describe the share of the whole population, not of
// the returned slice.
package analytics
