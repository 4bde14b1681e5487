package service

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
)

// maxAllocateAttempts bounds the collision-skip loop. Each attempt burns one
// counter value; drift wider than this means something other than a manual
// import is wrong and the operator should reconcile first.
const maxAllocateAttempts = 10

// TagService is the tag-number engine: allocation of globally-unique
// reference codes, reconciliation of per-prefix counters against persisted
// campaign data, and duplicate validation of campaign submissions.
type TagService interface {
	// Allocate produces the next free tag number for a channel type. The
	// counter advance is committed before the tag is returned, so the
	// number is consumed even if the caller never persists a channel with
	// it.
	Allocate(ctx context.Context, req *dto.AllocateTagRequest) (*dto.AllocateTagResponse, error)

	// Reconcile realigns every counter with the tags actually embedded in
	// persisted campaigns. Counters are only ever raised; prefixes whose
	// tags were all deleted keep their high-water mark. Idempotent.
	Reconcile(ctx context.Context) error

	// ValidateCampaignTags rejects a channel list that would introduce a
	// duplicate tag number, either within the submission or against any
	// other persisted campaign. excludeCampaignID is the storage identifier
	// of the campaign being updated, empty on create. Pure check.
	ValidateCampaignTags(ctx context.Context, channels []campaign.Channel, excludeCampaignID string) error

	// ListCounters returns all counters with display platform names
	ListCounters(ctx context.Context) (*dto.ListCountersResponse, error)
}

type tagService struct {
	counterRepo  tag.CounterRepository
	campaignRepo campaign.Repository
	log          *logger.Logger
}

func NewTagService(counterRepo tag.CounterRepository, campaignRepo campaign.Repository, log *logger.Logger) TagService {
	return &tagService{
		counterRepo:  counterRepo,
		campaignRepo: campaignRepo,
		log:          log,
	}
}

func (s *tagService) Allocate(ctx context.Context, req *dto.AllocateTagRequest) (*dto.AllocateTagResponse, error) {
	if req == nil {
		return nil, ierr.NewError("allocation request cannot be nil").
			WithHint("Request body is required").
			Mark(ierr.ErrValidation)
	}

	prefix, err := tag.PrefixForChannelType(req.ChannelType)
	if err != nil {
		return nil, err
	}

	// Every attempt is an atomic increment-and-fetch, so the counter is
	// durably consumed before the candidate is checked. If the counter has
	// fallen behind manually imported tags the loop walks past them,
	// leaving gaps rather than ever reusing a number.
	for attempt := 1; attempt <= maxAllocateAttempts; attempt++ {
		number, err := s.counterRepo.Next(ctx, prefix)
		if err != nil {
			return nil, err
		}

		candidate := tag.Format(prefix, number)
		exists, err := s.campaignRepo.TagExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !exists {
			return &dto.AllocateTagResponse{
				TagNumber: candidate,
				Prefix:    prefix,
				Number:    number,
			}, nil
		}

		s.log.Warnw("tag number already in use, advancing counter",
			"tag_number", candidate,
			"prefix", prefix,
			"attempt", attempt,
		)
	}

	return nil, ierr.NewErrorf("no free tag number found for prefix %s after %d attempts", prefix, maxAllocateAttempts).
		WithHint("Tag counters have drifted too far behind existing data, run a reconciliation first").
		Mark(ierr.ErrInvalidOperation)
}

func (s *tagService) Reconcile(ctx context.Context) error {
	campaigns, err := s.campaignRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	maxByPrefix := make(map[string]int64)
	for _, c := range campaigns {
		for _, ch := range c.Channels {
			tagNumber := strings.TrimSpace(ch.TagNumber)
			if tagNumber == "" {
				continue
			}

			prefix, number, err := tag.Parse(tagNumber)
			if err != nil {
				// tolerant scan: one bad historical record never stops
				// the maintenance pass
				s.log.Warnw("skipping malformed tag number during reconciliation",
					"tag_number", tagNumber,
					"campaign_id", c.ID,
					"error", err,
				)
				continue
			}

			if number > maxByPrefix[prefix] {
				maxByPrefix[prefix] = number
			}
		}
	}

	for prefix, number := range maxByPrefix {
		if err := s.counterRepo.RaiseTo(ctx, prefix, number); err != nil {
			return err
		}
	}

	s.log.Infow("tag counters reconciled", "prefixes", len(maxByPrefix))
	return nil
}

func (s *tagService) ValidateCampaignTags(ctx context.Context, channels []campaign.Channel, excludeCampaignID string) error {
	tags := make([]string, 0, len(channels))
	for _, ch := range channels {
		t := strings.TrimSpace(ch.TagNumber)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		return nil
	}

	// intra-campaign check runs first; the cross-campaign scan is only
	// paid for once the submission is self-consistent
	if dups := duplicates(tags); len(dups) > 0 {
		return ierr.WithError(&tag.DuplicateTagsError{
			Scope: tag.DuplicateScopeCampaign,
			Tags:  dups,
		}).
			WithHintf("Tag numbers repeated within this campaign: %s", strings.Join(dups, ", ")).
			WithReportableDetails(map[string]any{"tags": dups}).
			Mark(ierr.ErrAlreadyExists)
	}

	campaigns, err := s.campaignRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	used := make(map[string]struct{})
	for _, c := range campaigns {
		if excludeCampaignID != "" && c.ID == excludeCampaignID {
			continue
		}
		for _, ch := range c.Channels {
			if t := strings.TrimSpace(ch.TagNumber); t != "" {
				used[t] = struct{}{}
			}
		}
	}

	taken := lo.Filter(tags, func(t string, _ int) bool {
		_, ok := used[t]
		return ok
	})
	if len(taken) > 0 {
		taken = lo.Uniq(taken)
		sort.Strings(taken)
		return ierr.WithError(&tag.DuplicateTagsError{
			Scope: tag.DuplicateScopeGlobal,
			Tags:  taken,
		}).
			WithHintf("Tag numbers already used by another campaign: %s", strings.Join(taken, ", ")).
			WithReportableDetails(map[string]any{"tags": taken}).
			Mark(ierr.ErrAlreadyExists)
	}

	return nil
}

func (s *tagService) ListCounters(ctx context.Context) (*dto.ListCountersResponse, error) {
	counters, err := s.counterRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListCountersResponse{
		Counters: make([]*dto.CounterResponse, len(counters)),
	}
	for i, c := range counters {
		resp.Counters[i] = dto.ToCounterResponse(c)
	}
	return resp, nil
}

// duplicates returns the deduplicated, sorted set of values appearing more
// than once
func duplicates(values []string) []string {
	seen := make(map[string]int, len(values))
	for _, v := range values {
		seen[v]++
	}

	var dups []string
	for v, n := range seen {
		if n > 1 {
			dups = append(dups, v)
		}
	}
	sort.Strings(dups)
	return dups
}
