package service

import (
	"context"
	"fmt"

	"github.com/guttosm/shoppulse/internal/cache"
	"github.com/guttosm/shoppulse/internal/logger"
	jsoniter "github.com/json-iterator/go"
)

var snapshot = jsoniter.ConfigCompatibleWithStandardLibrary

// memoize returns the snapshot stored under key, or runs compute and stores
// its result. Every caller gets its own decoded copy.
func memoize[T any](ctx context.Context, store cache.Store, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("cache get %s: %w", key, err)
	}
	if ok {
		var out T
		if err := snapshot.Unmarshal(raw, &out); err != nil {
			return zero, fmt.Errorf("decode snapshot %s: %w", key, err)
		}
		logger.L().Debug().Str("key", key).Msg("cache hit")
		return out, nil
	}
	logger.L().Debug().Str("key", key).Msg("cache miss")

	out, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	raw, err = snapshot.Marshal(out)
	if err != nil {
		return zero, fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	if err := store.Put(ctx, key, raw); err != nil {
		return zero, fmt.Errorf("cache put %s: %w", key, err)
	}
	return out, nil
}
