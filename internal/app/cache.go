package app

import (
	"github.com/guttosm/shoppulse/config"
	"github.com/guttosm/shoppulse/internal/cache"
	"github.com/guttosm/shoppulse/internal/logger"
)

// newReportCache builds the memoization store for the reporting service.
//
// Disabled caching yields a Noop store. With a TTL a janitor sweeps expired
// entries every PurgeInterval. stop is always non-nil.
func newReportCache(cfg config.CacheConfig) (cache.Store, func(), error) {
	if !cfg.Enabled {
		logger.L().Info().Msg("report cache disabled")
		return cache.NewNoop(), func() {}, nil
	}

	mem := cache.NewMemory(cfg.TTL, cfg.MaxEntries)
	logger.L().Info().
		Dur("ttl", cfg.TTL).
		Int("max_entries", cfg.MaxEntries).
		Msg("report cache enabled")

	if cfg.TTL <= 0 {
		return mem, func() {}, nil
	}

	janitor := cache.NewJanitor(mem, cfg.PurgeInterval)
	if err := janitor.Start(); err != nil {
		return nil, nil, err
	}
	return mem, janitor.Stop, nil
}
