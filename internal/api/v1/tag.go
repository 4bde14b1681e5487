package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
)

type TagHandler struct {
	service service.TagService
	log     *logger.Logger
}

func NewTagHandler(service service.TagService, log *logger.Logger) *TagHandler {
	return &TagHandler{service: service, log: log}
}

// AllocateTag hands out the next free reference code for a channel type
func (h *TagHandler) AllocateTag(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.AllocateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Allocate(ctx, &req)
	if err != nil {
		h.log.Errorw("Failed to allocate tag", "error", err, "channel_type", req.ChannelType)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reconcile forces a counter reconciliation pass
func (h *TagHandler) Reconcile(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.Reconcile(ctx); err != nil {
		h.log.Errorw("Failed to reconcile tag counters", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{Message: "Tag counters reconciled successfully"})
}

// ListCounters returns the current counters with display platform names
func (h *TagHandler) ListCounters(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.ListCounters(ctx)
	if err != nil {
		h.log.Errorw("Failed to list tag counters", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
