package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
)

type EmployeeHandler struct {
	service service.EmployeeService
	log     *logger.Logger
}

func NewEmployeeHandler(service service.EmployeeService, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, log: log}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	created, err := h.service.CreateEmployee(ctx, &req)
	if err != nil {
		h.log.Errorw("Failed to create employee", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(created))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := h.service.GetEmployee(ctx, c.Param("id"))
	if err != nil {
		h.log.Errorw("Failed to get employee", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(result))
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	employees, err := h.service.ListEmployees(ctx)
	if err != nil {
		h.log.Errorw("Failed to list employees", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponseList(employees))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	updated, err := h.service.UpdateEmployee(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Errorw("Failed to update employee", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteEmployee(ctx, c.Param("id")); err != nil {
		h.log.Errorw("Failed to delete employee", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
