package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
)

type RoleHandler struct {
	service service.RoleService
	log     *logger.Logger
}

func NewRoleHandler(service service.RoleService, log *logger.Logger) *RoleHandler {
	return &RoleHandler{service: service, log: log}
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	created, err := h.service.CreateRole(ctx, &req)
	if err != nil {
		h.log.Errorw("Failed to create role", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(created))
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.service.GetRole(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorw("Failed to get role", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(result))
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	ctx := c.Request.Context()
	roles, err := h.service.ListRoles(ctx)
	if err != nil {
		h.log.Errorw("Failed to list roles", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponseList(roles))
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	updated, err := h.service.UpdateRole(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Errorw("Failed to update role", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(updated))
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteRole(ctx, c.Param("id")); err != nil {
		h.log.Errorw("Failed to delete role", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}
