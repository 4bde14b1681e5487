package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
)

type UserHandler struct {
	service service.UserService
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	created, err := h.service.CreateUser(ctx, &req)
	if err != nil {
		h.log.Errorw("Failed to create user", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.service.GetUser(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorw("Failed to get user", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(result))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.service.ListUsers(ctx)
	if err != nil {
		h.log.Errorw("Failed to list users", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponseList(users))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	updated, err := h.service.UpdateUser(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Errorw("Failed to update user", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteUser(ctx, c.Param("id")); err != nil {
		h.log.Errorw("Failed to delete user", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
