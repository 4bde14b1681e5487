package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Campaigns"

// ReportService renders the campaign report workbook: one row per channel,
// campaigns without channels still get a summary row.
type ReportService interface {
	ExportCampaigns(ctx context.Context) ([]byte, error)
}

type reportService struct {
	campaignRepo campaign.Repository
	log          *logger.Logger
}

func NewReportService(campaignRepo campaign.Repository, log *logger.Logger) ReportService {
	return &reportService{campaignRepo: campaignRepo, log: log}
}

func (s *reportService) ExportCampaigns(ctx context.Context) ([]byte, error) {
	campaigns, err := s.campaignRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), reportSheet)

	header := []any{
		"Campaign Code", "Campaign Name", "Start Date", "End Date",
		"Channel", "Channel Type", "Platform", "Tag Number", "Budget",
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render report").
			Mark(ierr.ErrSystem)
	}

	row := 2
	for _, c := range campaigns {
		if len(c.Channels) == 0 {
			values := []any{c.Code, c.Name, formatDate(c.StartDate), formatDate(c.EndDate), "", "", "", "", ""}
			if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return nil, ierr.WithError(err).
					WithHint("Failed to render report").
					Mark(ierr.ErrSystem)
			}
			row++
			continue
		}

		for _, ch := range c.Channels {
			values := []any{
				c.Code, c.Name, formatDate(c.StartDate), formatDate(c.EndDate),
				ch.Name, ch.ChannelType, ch.Platform, ch.TagNumber, ch.Budget,
			}
			if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return nil, ierr.WithError(err).
					WithHint("Failed to render report").
					Mark(ierr.ErrSystem)
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render report").
			Mark(ierr.ErrSystem)
	}

	s.log.Infow("campaign report exported", "campaigns", len(campaigns), "rows", row-2)
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
