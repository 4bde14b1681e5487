package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

type InMemoryRoleStore struct {
	mu    sync.RWMutex
	roles map[string]*role.Role
}

func NewInMemoryRoleStore() *InMemoryRoleStore {
	return &InMemoryRoleStore{
		roles: make(map[string]*role.Role),
	}
}

func (s *InMemoryRoleStore) Create(ctx context.Context, r *role.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		return ierr.NewError("role ID cannot be empty").Mark(ierr.ErrValidation)
	}
	copied := *r
	s.roles[r.ID] = &copied
	return nil
}

func (s *InMemoryRoleStore) Get(ctx context.Context, id string) (*role.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.roles[id]
	if !exists {
		return nil, ierr.NewErrorf("role %s not found", id).Mark(ierr.ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (s *InMemoryRoleStore) List(ctx context.Context) ([]*role.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*role.Role, 0, len(s.roles))
	for _, r := range s.roles {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryRoleStore) Update(ctx context.Context, r *role.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.roles[r.ID]; !exists {
		return ierr.NewErrorf("role %s not found", r.ID).Mark(ierr.ErrNotFound)
	}
	copied := *r
	s.roles[r.ID] = &copied
	return nil
}

func (s *InMemoryRoleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.roles[id]; !exists {
		return ierr.NewErrorf("role %s not found", id).Mark(ierr.ErrNotFound)
	}
	delete(s.roles, id)
	return nil
}
