package cache

import "context"

// Noop is a Store that never keeps anything: every Get misses.
type Noop struct{}

// NewNoop returns a Store that always misses.
func NewNoop() Noop { return Noop{} }

// Get always reports a miss.
func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Put discards value.
func (Noop) Put(context.Context, string, []byte) error { return nil }
