package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/user"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[string]*user.User),
	}
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		return ierr.NewError("user ID cannot be empty").Mark(ierr.ErrValidation)
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ierr.NewErrorf("user with email %s already exists", u.Email).Mark(ierr.ErrAlreadyExists)
		}
	}
	copied := *u
	s.users[u.ID] = &copied
	return nil
}

func (s *InMemoryUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[id]
	if !exists {
		return nil, ierr.NewErrorf("user %s not found", id).Mark(ierr.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ierr.NewErrorf("user with email %s not found", email).Mark(ierr.ErrNotFound)
}

func (s *InMemoryUserStore) List(ctx context.Context) ([]*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryUserStore) Update(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; !exists {
		return ierr.NewErrorf("user %s not found", u.ID).Mark(ierr.ErrNotFound)
	}
	copied := *u
	s.users[u.ID] = &copied
	return nil
}

func (s *InMemoryUserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[id]; !exists {
		return ierr.NewErrorf("user %s not found", id).Mark(ierr.ErrNotFound)
	}
	delete(s.users, id)
	return nil
}
