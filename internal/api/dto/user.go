package dto

import (
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/user"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
)

type CreateUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	RoleID string `json:"role_id"`
}

func (r *CreateUserRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateUserRequest) ToUser() *user.User {
	u := user.New(r.Name, r.Email)
	u.RoleID = r.RoleID
	return u
}

type UpdateUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	RoleID string `json:"role_id"`
}

func (r *UpdateUserRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    string    `json:"role_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponseList(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
