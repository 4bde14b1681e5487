package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/testutil"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ReportServiceSuite struct {
	suite.Suite
	ctx           context.Context
	service       ReportService
	campaignStore *testutil.InMemoryCampaignStore
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.campaignStore = testutil.NewInMemoryCampaignStore()
	s.service = NewReportService(s.campaignStore, logger.L)
}

func (s *ReportServiceSuite) TestExportCampaigns() {
	c := campaign.New("Diwali 2026")
	c.Channels = []campaign.Channel{
		{Name: "teaser", ChannelType: "Instagram", Platform: "Reels", TagNumber: "IG00001", Budget: 25000},
		{Name: "radio spot", ChannelType: "Radio", TagNumber: "RD00001", Budget: 10000},
	}
	s.Require().NoError(s.campaignStore.Create(s.ctx, c))

	empty := campaign.New("Draft")
	s.Require().NoError(s.campaignStore.Create(s.ctx, empty))

	data, err := s.service.ExportCampaigns(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Campaigns")
	s.Require().NoError(err)

	// header + two channel rows + one summary row for the empty campaign
	s.Require().Len(rows, 4)
	s.Equal("Campaign Code", rows[0][0])
	s.Equal("Tag Number", rows[0][7])

	var tags []string
	for _, row := range rows[1:] {
		if len(row) > 7 {
			tags = append(tags, row[7])
		}
	}
	s.Contains(tags, "IG00001")
	s.Contains(tags, "RD00001")
}

func (s *ReportServiceSuite) TestExportEmptySystem() {
	data, err := s.service.ExportCampaigns(s.ctx)
	s.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Campaigns")
	s.Require().NoError(err)
	s.Len(rows, 1)
}
