package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

// InMemoryCounterStore implements tag.CounterRepository with the same
// atomicity the mongo implementation gets from findOneAndUpdate: Next and
// RaiseTo hold the write lock for the whole read-modify-write.
type InMemoryCounterStore struct {
	mu       sync.RWMutex
	counters map[string]*tag.Counter
}

func NewInMemoryCounterStore() *InMemoryCounterStore {
	return &InMemoryCounterStore{
		counters: make(map[string]*tag.Counter),
	}
}

func (s *InMemoryCounterStore) Get(ctx context.Context, prefix string) (*tag.Counter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.counters[prefix]
	if !ok {
		return nil, ierr.NewErrorf("counter for prefix %s not found", prefix).
			Mark(ierr.ErrNotFound)
	}
	copied := *c
	return &copied, nil
}

func (s *InMemoryCounterStore) List(ctx context.Context) ([]*tag.Counter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*tag.Counter, 0, len(s.counters))
	for _, c := range s.counters {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out, nil
}

func (s *InMemoryCounterStore) Next(ctx context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[prefix]
	if !ok {
		c = &tag.Counter{Prefix: prefix}
		s.counters[prefix] = c
	}
	c.LastNumber++
	c.UpdatedAt = time.Now().UTC()
	return c.LastNumber, nil
}

func (s *InMemoryCounterStore) RaiseTo(ctx context.Context, prefix string, n int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[prefix]
	if !ok {
		c = &tag.Counter{Prefix: prefix}
		s.counters[prefix] = c
	}
	if n > c.LastNumber {
		c.LastNumber = n
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// Clear removes all counters
func (s *InMemoryCounterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[string]*tag.Counter)
}
