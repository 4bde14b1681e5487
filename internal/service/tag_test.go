package service

import (
	"context"
	"testing"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type TagServiceSuite struct {
	suite.Suite
	ctx           context.Context
	service       TagService
	counterStore  *testutil.InMemoryCounterStore
	campaignStore *testutil.InMemoryCampaignStore
}

func TestTagService(t *testing.T) {
	suite.Run(t, new(TagServiceSuite))
}

func (s *TagServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.counterStore = testutil.NewInMemoryCounterStore()
	s.campaignStore = testutil.NewInMemoryCampaignStore()
	s.service = NewTagService(s.counterStore, s.campaignStore, logger.L)
}

// persistCampaign stores a campaign carrying the given tag numbers without
// going through the allocator, simulating manual edits and bulk imports
func (s *TagServiceSuite) persistCampaign(name string, tags ...string) *campaign.Campaign {
	c := campaign.New(name)
	for _, t := range tags {
		c.Channels = append(c.Channels, campaign.Channel{
			Name:        name + "-" + t,
			ChannelType: "Instagram",
			TagNumber:   t,
		})
	}
	s.Require().NoError(s.campaignStore.Create(s.ctx, c))
	return c
}

func (s *TagServiceSuite) allocate(channelType string) string {
	resp, err := s.service.Allocate(s.ctx, &dto.AllocateTagRequest{ChannelType: channelType})
	s.Require().NoError(err)
	return resp.TagNumber
}

func (s *TagServiceSuite) TestAllocateSequential() {
	s.Equal("IG00001", s.allocate("Instagram"))
	s.Equal("IG00002", s.allocate("Instagram"))
	s.Equal("IG00003", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestAllocateIndependentPrefixes() {
	s.Equal("IG00001", s.allocate("Instagram"))
	s.Equal("FB00001", s.allocate("Facebook"))
	s.Equal("IG00002", s.allocate("Instagram"))
	s.Equal("SMS00001", s.allocate("SMS"))
}

func (s *TagServiceSuite) TestAllocateUniqueness() {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		t := s.allocate("Instagram")
		_, dup := seen[t]
		s.False(dup, "tag %s returned twice", t)
		seen[t] = struct{}{}
	}
}

func (s *TagServiceSuite) TestAllocateReturnsPrefixAndNumber() {
	resp, err := s.service.Allocate(s.ctx, &dto.AllocateTagRequest{ChannelType: "Google"})
	s.Require().NoError(err)
	s.Equal("GG00001", resp.TagNumber)
	s.Equal("GG", resp.Prefix)
	s.Equal(int64(1), resp.Number)
}

func (s *TagServiceSuite) TestAllocateUnknownChannelType() {
	_, err := s.service.Allocate(s.ctx, &dto.AllocateTagRequest{ChannelType: "Carrier Pigeon"})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))

	// no counter may be created for a rejected channel type
	counters, listErr := s.counterStore.List(s.ctx)
	s.Require().NoError(listErr)
	s.Empty(counters)
}

func (s *TagServiceSuite) TestAllocateEmptyChannelType() {
	_, err := s.service.Allocate(s.ctx, &dto.AllocateTagRequest{ChannelType: "  "})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TagServiceSuite) TestAllocatePlatformDoesNotAffectPrefix() {
	resp, err := s.service.Allocate(s.ctx, &dto.AllocateTagRequest{ChannelType: "Instagram", Platform: "Reels"})
	s.Require().NoError(err)
	s.Equal("IG00001", resp.TagNumber)
}

func (s *TagServiceSuite) TestAllocateSkipsPersistedCollisions() {
	// counter is at zero but IG00001 and IG00002 already exist from a
	// manual import; the allocator must walk past both
	s.persistCampaign("imported", "IG00001", "IG00002")

	s.Equal("IG00003", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestAllocateMonotonicCounter() {
	var last int64
	for i := 0; i < 20; i++ {
		s.allocate("Instagram")
		c, err := s.counterStore.Get(s.ctx, "IG")
		s.Require().NoError(err)
		s.GreaterOrEqual(c.LastNumber, last)
		last = c.LastNumber
	}
}

func (s *TagServiceSuite) TestAllocateCommitsCounterEvenIfTagUnused() {
	// the returned tag is never persisted in a campaign; the next
	// allocation must still move on
	s.Equal("IG00001", s.allocate("Instagram"))
	s.Equal("IG00002", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestReconcileRaisesCounterToObservedMax() {
	s.persistCampaign("manual", "IG00005")

	s.Require().NoError(s.service.Reconcile(s.ctx))

	c, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(5), c.LastNumber)

	s.Equal("IG00006", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestReconcileNeverLowersCounter() {
	s.allocate("Instagram") // IG00001
	s.allocate("Instagram") // IG00002
	s.persistCampaign("older", "IG00001")

	s.Require().NoError(s.service.Reconcile(s.ctx))

	c, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(2), c.LastNumber)
}

func (s *TagServiceSuite) TestReconcilePreservesHistoryAfterDeletion() {
	c := s.persistCampaign("ephemeral", s.allocate("Instagram"))
	s.Require().NoError(s.campaignStore.Delete(s.ctx, c.ID))

	s.Require().NoError(s.service.Reconcile(s.ctx))

	// IG00001 was deleted but must never be reissued
	s.Equal("IG00002", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestReconcileIdempotent() {
	s.persistCampaign("a", "IG00003", "FB00010")
	s.persistCampaign("b", "GG00042")

	s.Require().NoError(s.service.Reconcile(s.ctx))
	first := s.counterSnapshot()

	s.Require().NoError(s.service.Reconcile(s.ctx))
	second := s.counterSnapshot()

	s.Equal(first, second)
}

func (s *TagServiceSuite) TestReconcileSkipsMalformedTags() {
	c := campaign.New("messy")
	c.Channels = []campaign.Channel{
		{Name: "ok", ChannelType: "Instagram", TagNumber: "IG00004"},
		{Name: "junk", ChannelType: "Instagram", TagNumber: "garbage!"},
		{Name: "short", ChannelType: "Instagram", TagNumber: "X1"},
		{Name: "blank", ChannelType: "Instagram", TagNumber: "   "},
	}
	s.Require().NoError(s.campaignStore.Create(s.ctx, c))

	s.Require().NoError(s.service.Reconcile(s.ctx))

	counter, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(4), counter.LastNumber)
}

func (s *TagServiceSuite) TestReconcileTrimsTagsBeforeParsing() {
	s.persistCampaign("padded", "  IG00009  ")

	s.Require().NoError(s.service.Reconcile(s.ctx))

	c, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(9), c.LastNumber)
}

func (s *TagServiceSuite) TestEndToEndAllocationScenario() {
	s.Equal("IG00001", s.allocate("Instagram"))
	s.Equal("IG00002", s.allocate("Instagram"))

	// a channel tagged IG00005 lands without going through the allocator
	s.persistCampaign("import", "IG00005")
	s.Require().NoError(s.service.Reconcile(s.ctx))

	s.Equal("IG00006", s.allocate("Instagram"))
}

func (s *TagServiceSuite) TestValidateRejectsIntraCampaignDuplicates() {
	channels := []campaign.Channel{
		{Name: "a", ChannelType: "Instagram", TagNumber: "IG00001"},
		{Name: "b", ChannelType: "Instagram", TagNumber: "IG00001"},
	}

	err := s.service.ValidateCampaignTags(s.ctx, channels, "")
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeCampaign, dupErr.Scope)
	s.Equal([]string{"IG00001"}, dupErr.Tags)
}

func (s *TagServiceSuite) TestValidateReportsEachDuplicateOnce() {
	channels := []campaign.Channel{
		{TagNumber: "IG00001"},
		{TagNumber: "IG00001"},
		{TagNumber: "IG00001"},
		{TagNumber: "FB00002"},
		{TagNumber: "FB00002"},
	}

	err := s.service.ValidateCampaignTags(s.ctx, channels, "")
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal([]string{"FB00002", "IG00001"}, dupErr.Tags)
}

func (s *TagServiceSuite) TestValidateRejectsCrossCampaignDuplicates() {
	s.persistCampaign("existing", "FB00010")

	channels := []campaign.Channel{
		{Name: "new", ChannelType: "Facebook", TagNumber: "FB00010"},
	}

	err := s.service.ValidateCampaignTags(s.ctx, channels, "")
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeGlobal, dupErr.Scope)
	s.Equal([]string{"FB00010"}, dupErr.Tags)
}

func (s *TagServiceSuite) TestValidateExcludesOwnCampaignOnUpdate() {
	existing := s.persistCampaign("existing", "FB00010")

	channels := []campaign.Channel{
		{Name: "same", ChannelType: "Facebook", TagNumber: "FB00010"},
	}

	// the same tags resubmitted as an update to the owning campaign pass
	s.NoError(s.service.ValidateCampaignTags(s.ctx, channels, existing.ID))

	// but fail when submitted as a different campaign
	s.Error(s.service.ValidateCampaignTags(s.ctx, channels, "camp_other"))
}

func (s *TagServiceSuite) TestValidateIgnoresEmptyTags() {
	channels := []campaign.Channel{
		{Name: "a", ChannelType: "Instagram"},
		{Name: "b", ChannelType: "Instagram", TagNumber: "   "},
		{Name: "c", ChannelType: "Instagram", TagNumber: ""},
	}

	s.NoError(s.service.ValidateCampaignTags(s.ctx, channels, ""))
}

func (s *TagServiceSuite) TestValidateTrimsBeforeComparing() {
	channels := []campaign.Channel{
		{TagNumber: "IG00001"},
		{TagNumber: "  IG00001  "},
	}

	err := s.service.ValidateCampaignTags(s.ctx, channels, "")
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeCampaign, dupErr.Scope)
}

func (s *TagServiceSuite) TestValidateIntraCheckRunsFirst() {
	// the submission both repeats a tag internally and collides with
	// persisted data; the intra-campaign failure wins
	s.persistCampaign("existing", "IG00001")

	channels := []campaign.Channel{
		{TagNumber: "IG00001"},
		{TagNumber: "IG00001"},
	}

	err := s.service.ValidateCampaignTags(s.ctx, channels, "")
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeCampaign, dupErr.Scope)
}

func (s *TagServiceSuite) TestListCounters() {
	s.allocate("Instagram")
	s.allocate("Instagram")
	s.allocate("SMS")

	resp, err := s.service.ListCounters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(resp.Counters, 2)

	s.Equal("IG", resp.Counters[0].Prefix)
	s.Equal("Instagram", resp.Counters[0].Platform)
	s.Equal(int64(2), resp.Counters[0].LastNumber)

	s.Equal("SMS", resp.Counters[1].Prefix)
	s.Equal("SMS", resp.Counters[1].Platform)
	s.Equal(int64(1), resp.Counters[1].LastNumber)
}

func (s *TagServiceSuite) TestAllocateNilRequest() {
	_, err := s.service.Allocate(s.ctx, nil)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

// counterSnapshot captures prefix -> last number for idempotence checks
func (s *TagServiceSuite) counterSnapshot() map[string]int64 {
	counters, err := s.counterStore.List(s.ctx)
	s.Require().NoError(err)

	snapshot := make(map[string]int64, len(counters))
	for _, c := range counters {
		snapshot[c.Prefix] = c.LastNumber
	}
	return snapshot
}
