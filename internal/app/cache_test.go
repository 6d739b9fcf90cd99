package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/shoppulse/config"
	"github.com/guttosm/shoppulse/internal/cache"
)

func TestNewReportCache(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.CacheConfig
		memory  bool
		wantErr bool
	}{
		{name: "disabled", cfg: config.CacheConfig{Enabled: false}},
		{name: "no ttl", cfg: config.CacheConfig{Enabled: true}, memory: true},
		{name: "ttl with janitor", cfg: config.CacheConfig{Enabled: true, TTL: time.Minute, PurgeInterval: time.Second}, memory: true},
		{name: "ttl without purge interval", cfg: config.CacheConfig{Enabled: true, TTL: time.Minute}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, stop, err := newReportCache(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || stop == nil {
				t.Fatalf("unexpected err=%v nilStop=%v", err, stop == nil)
			}
			defer stop()

			_, isMemory := store.(*cache.Memory)
			if isMemory != tc.memory {
				t.Fatalf("store type %T, memory=%v", store, tc.memory)
			}

			ctx := context.Background()
			if err := store.Put(ctx, "k", []byte("v")); err != nil {
				t.Fatalf("put: %v", err)
			}
			_, hit, _ := store.Get(ctx, "k")
			if hit != tc.memory {
				t.Fatalf("hit=%v, want %v", hit, tc.memory)
			}
		})
	}
}
