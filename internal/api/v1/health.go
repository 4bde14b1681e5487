package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
)

type HealthHandler struct {
	log *logger.Logger
}

func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
