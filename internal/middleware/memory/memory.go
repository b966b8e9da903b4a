// Package memory is an in-memory cache storage with per-entry ttl.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu sync.RWMutex
	m  map[string]entry
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		m: make(map[string]entry),
	}
}

// Get returns cached content or nil when the key is missing or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()

		return nil
	}

	return e.content
}

// Set stores content for the given duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	s.m[key] = entry{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
	s.mu.Unlock()
}
