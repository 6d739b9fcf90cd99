// Package cache provides the stores behind the report memoization layer.
//
// A Store maps a memoization key to an encoded result snapshot. Expiry,
// eviction and capacity are properties of the concrete store; callers must
// work the same whether the store never expires entries (Memory with no TTL)
// or never keeps them (Noop).
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Store is the contract the reporting facade memoizes through.
//
// Get returns the stored snapshot and true on a hit. Put stores or replaces
// the snapshot for key. Implementations must be safe for concurrent use;
// concurrent Puts on the same key resolve as last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

const keySeparator = "|"

// Key builds a deterministic memoization key from an operation name and its
// parameters. Supported parts are time.Time (formatted as a calendar date),
// int, int64 and string; parts must not contain the separator.
//
//	Key("topProducts", start, end, 10) // "topProducts|2024-01-01|2024-01-31|10"
func Key(operation string, parts ...any) string {
	var b strings.Builder
	b.WriteString(operation)
	for _, p := range parts {
		b.WriteString(keySeparator)
		switch v := p.(type) {
		case time.Time:
			b.WriteString(v.Format("2006-01-02"))
		case int:
			b.WriteString(strconv.Itoa(v))
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case string:
			b.WriteString(v)
		default:
			panic("cache: unsupported key part type")
		}
	}
	return b.String()
}
