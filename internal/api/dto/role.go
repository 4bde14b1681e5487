package dto

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
)

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required" example:"campaign-admin"`
	Permissions []string `json:"permissions"`
}

func (r *CreateRoleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateRoleRequest) ToRole() *role.Role {
	return role.New(r.Name, r.Permissions)
}

type UpdateRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}

func (r *UpdateRoleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToRoleResponse(r *role.Role) *RoleResponse {
	return &RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToRoleResponseList(roles []*role.Role) []*RoleResponse {
	out := make([]*RoleResponse, len(roles))
	for i, r := range roles {
		out[i] = ToRoleResponse(r)
	}
	return out
}
