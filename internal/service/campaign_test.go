package service

import (
	"context"
	"testing"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/testutil"
	"github.com/shama2369/trichygold-campaignsc/internal/types"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
	"github.com/stretchr/testify/suite"
)

type CampaignServiceSuite struct {
	suite.Suite
	ctx           context.Context
	service       CampaignService
	tagService    TagService
	counterStore  *testutil.InMemoryCounterStore
	campaignStore *testutil.InMemoryCampaignStore
}

func TestCampaignService(t *testing.T) {
	suite.Run(t, new(CampaignServiceSuite))
}

func (s *CampaignServiceSuite) SetupSuite() {
	validator.NewValidator()
}

func (s *CampaignServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.counterStore = testutil.NewInMemoryCounterStore()
	s.campaignStore = testutil.NewInMemoryCampaignStore()
	s.tagService = NewTagService(s.counterStore, s.campaignStore, logger.L)
	s.service = NewCampaignService(s.campaignStore, s.tagService, nil, logger.L)
}

func (s *CampaignServiceSuite) createRequest(tags ...string) *dto.CreateCampaignRequest {
	req := &dto.CreateCampaignRequest{Name: "Diwali 2026"}
	for _, t := range tags {
		req.Channels = append(req.Channels, dto.ChannelRequest{
			Name:        "channel-" + t,
			ChannelType: "Instagram",
			TagNumber:   t,
		})
	}
	return req
}

func (s *CampaignServiceSuite) TestCreateCampaign() {
	created, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00001"))
	s.Require().NoError(err)

	s.NotEmpty(created.ID)
	s.NotEmpty(created.Code)
	s.Equal(types.StatusPublished, created.Status)
	s.Equal(types.DefaultUserID, created.CreatedBy)

	stored, err := s.campaignStore.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Diwali 2026", stored.Name)
	s.Require().Len(stored.Channels, 1)
	s.Equal("IG00001", stored.Channels[0].TagNumber)
}

func (s *CampaignServiceSuite) TestCreateCampaignNilRequest() {
	_, err := s.service.CreateCampaign(s.ctx, nil)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CampaignServiceSuite) TestCreateCampaignMissingName() {
	_, err := s.service.CreateCampaign(s.ctx, &dto.CreateCampaignRequest{})
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CampaignServiceSuite) TestCreateRejectsDuplicateTagsWithinSubmission() {
	_, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00001", "IG00001"))
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeCampaign, dupErr.Scope)

	// nothing may be persisted on a rejected submission
	campaigns, listErr := s.campaignStore.ListAll(s.ctx)
	s.Require().NoError(listErr)
	s.Empty(campaigns)
}

func (s *CampaignServiceSuite) TestCreateRejectsTagsUsedByOtherCampaigns() {
	_, err := s.service.CreateCampaign(s.ctx, s.createRequest("FB00010"))
	s.Require().NoError(err)

	_, err = s.service.CreateCampaign(s.ctx, s.createRequest("FB00010"))
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeGlobal, dupErr.Scope)
	s.Equal([]string{"FB00010"}, dupErr.Tags)
}

func (s *CampaignServiceSuite) TestCreateRunsReconcileAfterWrite() {
	_, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00007"))
	s.Require().NoError(err)

	c, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(7), c.LastNumber)
}

func (s *CampaignServiceSuite) TestUpdateCampaign() {
	created, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00001"))
	s.Require().NoError(err)

	updated, err := s.service.UpdateCampaign(s.ctx, created.ID, &dto.UpdateCampaignRequest{
		Name: "Diwali 2026 - extended",
		Channels: []dto.ChannelRequest{
			{Name: "reel", ChannelType: "Instagram", TagNumber: "IG00001"},
			{Name: "story", ChannelType: "Instagram", TagNumber: "IG00002"},
		},
	})
	s.Require().NoError(err)
	s.Equal("Diwali 2026 - extended", updated.Name)
	s.Len(updated.Channels, 2)

	// code and identity survive the update
	s.Equal(created.ID, updated.ID)
	s.Equal(created.Code, updated.Code)
}

func (s *CampaignServiceSuite) TestUpdateResubmittingOwnTagsSucceeds() {
	created, err := s.service.CreateCampaign(s.ctx, s.createRequest("FB00010"))
	s.Require().NoError(err)

	_, err = s.service.UpdateCampaign(s.ctx, created.ID, &dto.UpdateCampaignRequest{
		Name: "Diwali 2026",
		Channels: []dto.ChannelRequest{
			{Name: "post", ChannelType: "Facebook", TagNumber: "FB00010"},
		},
	})
	s.NoError(err)
}

func (s *CampaignServiceSuite) TestUpdateRejectsTagsOfOtherCampaigns() {
	_, err := s.service.CreateCampaign(s.ctx, s.createRequest("FB00010"))
	s.Require().NoError(err)

	other, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00001"))
	s.Require().NoError(err)

	_, err = s.service.UpdateCampaign(s.ctx, other.ID, &dto.UpdateCampaignRequest{
		Name: "poacher",
		Channels: []dto.ChannelRequest{
			{Name: "post", ChannelType: "Facebook", TagNumber: "FB00010"},
		},
	})
	s.Require().Error(err)

	var dupErr *tag.DuplicateTagsError
	s.Require().True(ierr.As(err, &dupErr))
	s.Equal(tag.DuplicateScopeGlobal, dupErr.Scope)
}

func (s *CampaignServiceSuite) TestUpdateUnknownCampaign() {
	_, err := s.service.UpdateCampaign(s.ctx, "camp_missing", &dto.UpdateCampaignRequest{Name: "x"})
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CampaignServiceSuite) TestDeleteCampaignKeepsCounters() {
	created, err := s.service.CreateCampaign(s.ctx, s.createRequest("IG00003"))
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteCampaign(s.ctx, created.ID))

	// deleting every tag must not reset the prefix high-water mark
	c, err := s.counterStore.Get(s.ctx, "IG")
	s.Require().NoError(err)
	s.Equal(int64(3), c.LastNumber)
}

func (s *CampaignServiceSuite) TestAttachImageWithoutStorageConfigured() {
	created, err := s.service.CreateCampaign(s.ctx, s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.AttachImage(s.ctx, created.ID, "banner.png", []byte{0x89, 0x50})
	s.Require().Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *CampaignServiceSuite) TestGetCampaignRequiresID() {
	_, err := s.service.GetCampaign(s.ctx, "")
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CampaignServiceSuite) TestChannelsWithoutTagsAreAccepted() {
	req := &dto.CreateCampaignRequest{
		Name: "draft",
		Channels: []dto.ChannelRequest{
			{Name: "tbd", ChannelType: "Radio"},
		},
	}
	created, err := s.service.CreateCampaign(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("", created.Channels[0].TagNumber)
}
