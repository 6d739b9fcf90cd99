package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value    []byte
	storedAt time.Time
	expires  time.Time // zero when the entry never expires
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Memory is an in-process Store guarded by a RWMutex.
//
// Entries expire ttl after they were stored (ttl <= 0 keeps them forever).
// When maxEntries > 0 and the store is full, the oldest entry is evicted to
// make room. Expired entries are dropped lazily on Get and in bulk by Purge.
type Memory struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	return &Memory{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns a copy of the snapshot stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if e.expired(m.now()) {
		m.mu.Lock()
		// re-check: a concurrent Put may have refreshed the entry
		if cur, ok := m.items[key]; ok && cur.expired(m.now()) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	return append([]byte(nil), e.value...), true, nil
}

// Put stores a copy of value under key, replacing any previous entry.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	now := m.now()
	e := entry{value: append([]byte(nil), value...), storedAt: now}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		m.evictLocked(now)
	}
	m.items[key] = e
	return nil
}

// evictLocked drops expired entries, or the oldest one when none expired.
func (m *Memory) evictLocked(now time.Time) {
	if m.purgeLocked(now) > 0 {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range m.items {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	delete(m.items, oldestKey)
}

func (m *Memory) purgeLocked(now time.Time) int {
	removed := 0
	for k, e := range m.items {
		if e.expired(now) {
			delete(m.items, k)
			removed++
		}
	}
	return removed
}

// Purge removes every expired entry and returns how many were removed.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purgeLocked(m.now())
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.items = make(map[string]entry)
	m.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
