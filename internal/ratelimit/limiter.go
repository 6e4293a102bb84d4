package ratelimit

import (
	"sync"
	"time"
)

// Store is a key-scoped request counter with expiry. The in-memory store is
// the only backend today; a shared counter service can implement this if the
// API ever runs on more than one instance.
type Store interface {
	Allow(key string) bool
}

type record struct {
	count     int
	resetTime time.Time
}

// MemoryStore counts requests per key over a fixed window. State lives only
// in process memory and is lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	max     int
	window  time.Duration
}

func NewMemoryStore(max int, window time.Duration) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*record),
		max:     max,
		window:  window,
	}

	go s.sweepExpired()

	return s
}

// Allow reports whether the request identified by key fits in the current
// window and records it when it does.
func (s *MemoryStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	rec, ok := s.records[key]
	if !ok || now.After(rec.resetTime) {
		s.records[key] = &record{count: 1, resetTime: now.Add(s.window)}
		return true
	}

	if rec.count >= s.max {
		return false
	}

	rec.count++
	return true
}

// sweepExpired drops stale records so idle keys do not accumulate.
func (s *MemoryStore) sweepExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, rec := range s.records {
			if now.After(rec.resetTime) {
				delete(s.records, key)
			}
		}
		s.mu.Unlock()
	}
}
