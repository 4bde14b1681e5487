package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
)

type InMemoryCampaignStore struct {
	mu        sync.RWMutex
	campaigns map[string]*campaign.Campaign
}

func NewInMemoryCampaignStore() *InMemoryCampaignStore {
	return &InMemoryCampaignStore{
		campaigns: make(map[string]*campaign.Campaign),
	}
}

func (s *InMemoryCampaignStore) Create(ctx context.Context, c *campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		return ierr.NewError("campaign ID cannot be empty").Mark(ierr.ErrValidation)
	}
	if _, exists := s.campaigns[c.ID]; exists {
		return ierr.NewErrorf("campaign %s already exists", c.ID).Mark(ierr.ErrAlreadyExists)
	}

	copied := *c
	s.campaigns[c.ID] = &copied
	return nil
}

func (s *InMemoryCampaignStore) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.campaigns[id]
	if !exists {
		return nil, ierr.NewErrorf("campaign %s not found", id).Mark(ierr.ErrNotFound)
	}
	copied := *c
	return &copied, nil
}

func (s *InMemoryCampaignStore) Update(ctx context.Context, c *campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[c.ID]; !exists {
		return ierr.NewErrorf("campaign %s not found", c.ID).Mark(ierr.ErrNotFound)
	}
	copied := *c
	s.campaigns[c.ID] = &copied
	return nil
}

func (s *InMemoryCampaignStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[id]; !exists {
		return ierr.NewErrorf("campaign %s not found", id).Mark(ierr.ErrNotFound)
	}
	delete(s.campaigns, id)
	return nil
}

func (s *InMemoryCampaignStore) ListAll(ctx context.Context) ([]*campaign.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*campaign.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryCampaignStore) TagExists(ctx context.Context, tagNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		for _, ch := range c.Channels {
			if strings.TrimSpace(ch.TagNumber) == tagNumber {
				return true, nil
			}
		}
	}
	return false, nil
}

// Clear removes all campaigns
func (s *InMemoryCampaignStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = make(map[string]*campaign.Campaign)
}
