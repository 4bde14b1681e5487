package v1

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
)

type CampaignHandler struct {
	service service.CampaignService
	reports service.ReportService
	log     *logger.Logger
}

func NewCampaignHandler(service service.CampaignService, reports service.ReportService, log *logger.Logger) *CampaignHandler {
	return &CampaignHandler{service: service, reports: reports, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	created, err := h.service.CreateCampaign(ctx, &req)
	if err != nil {
		h.log.Errorw("Failed to create campaign", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCampaignResponse(created))
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.service.GetCampaign(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorw("Failed to get campaign", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponse(result))
}

func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	campaigns, err := h.service.ListCampaigns(ctx)
	if err != nil {
		h.log.Errorw("Failed to list campaigns", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCampaignResponseList(campaigns))
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	updated, err := h.service.UpdateCampaign(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Errorw("Failed to update campaign", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(updated))
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteCampaign(ctx, c.Param("id")); err != nil {
		h.log.Errorw("Failed to delete campaign", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// UploadImage accepts a multipart image and attaches it to the campaign
func (h *CampaignHandler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("image")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("An image file is required in the 'image' field").
			Mark(ierr.ErrValidation))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	key, err := h.service.AttachImage(ctx, c.Param("id"), file.Filename, data)
	if err != nil {
		h.log.Errorw("Failed to attach campaign image", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadImageResponse{Key: key})
}

// GetImage streams a stored campaign image
func (h *CampaignHandler) GetImage(c *gin.Context) {
	ctx := c.Request.Context()

	key := strings.TrimPrefix(c.Param("key"), "/")
	data, err := h.service.GetImage(ctx, c.Param("id"), key)
	if err != nil {
		h.log.Errorw("Failed to fetch campaign image", "error", err)
		c.Error(err)
		return
	}

	contentType := "application/octet-stream"
	if kind, _ := filetype.Image(data); kind != filetype.Unknown {
		contentType = kind.MIME.Value
	}
	c.Data(http.StatusOK, contentType, data)
}

// ExportCampaigns streams the campaign report workbook
func (h *CampaignHandler) ExportCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.reports.ExportCampaigns(ctx)
	if err != nil {
		h.log.Errorw("Failed to export campaigns", "error", err)
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("campaigns-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}
