// Package memory is an in-memory CounterStore, used in tests and as a
// fallback when no local database path is available.
package memory

import (
	"context"
	"sync"
)

// Store ...
type Store struct {
	mu sync.Mutex
	m  map[string]int
}

// NewStore creates new instance of Store.
func NewStore() *Store {
	return &Store{
		m: make(map[string]int),
	}
}

// Get ...
func (s *Store) Get(_ context.Context, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m[day], nil
}

// Add ...
func (s *Store) Add(_ context.Context, day string, minutes int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[day] += minutes

	return s.m[day], nil
}
