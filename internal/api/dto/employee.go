package dto

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/employee"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
)

type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required" example:"Priya R"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation" example:"Marketing Executive"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateEmployeeRequest) ToEmployee() *employee.Employee {
	e := employee.New(r.Name)
	e.Email = r.Email
	e.Phone = r.Phone
	e.Designation = r.Designation
	return e
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type EmployeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Designation string    `json:"designation,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToEmployeeResponse(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Designation: e.Designation,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEmployeeResponseList(employees []*employee.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = ToEmployeeResponse(e)
	}
	return out
}
