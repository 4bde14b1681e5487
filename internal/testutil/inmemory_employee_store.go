package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/employee"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

type InMemoryEmployeeStore struct {
	mu        sync.RWMutex
	employees map[string]*employee.Employee
}

func NewInMemoryEmployeeStore() *InMemoryEmployeeStore {
	return &InMemoryEmployeeStore{
		employees: make(map[string]*employee.Employee),
	}
}

func (s *InMemoryEmployeeStore) Create(ctx context.Context, e *employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		return ierr.NewError("employee ID cannot be empty").Mark(ierr.ErrValidation)
	}
	copied := *e
	s.employees[e.ID] = &copied
	return nil
}

func (s *InMemoryEmployeeStore) Get(ctx context.Context, id string) (*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.employees[id]
	if !exists {
		return nil, ierr.NewErrorf("employee %s not found", id).Mark(ierr.ErrNotFound)
	}
	copied := *e
	return &copied, nil
}

func (s *InMemoryEmployeeStore) List(ctx context.Context) ([]*employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryEmployeeStore) Update(ctx context.Context, e *employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[e.ID]; !exists {
		return ierr.NewErrorf("employee %s not found", e.ID).Mark(ierr.ErrNotFound)
	}
	copied := *e
	s.employees[e.ID] = &copied
	return nil
}

func (s *InMemoryEmployeeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[id]; !exists {
		return ierr.NewErrorf("employee %s not found", id).Mark(ierr.ErrNotFound)
	}
	delete(s.employees, id)
	return nil
}
