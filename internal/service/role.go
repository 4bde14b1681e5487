package service

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

type RoleService interface {
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*role.Role, error)
	GetRole(ctx context.Context, id string) (*role.Role, error)
	ListRoles(ctx context.Context) ([]*role.Role, error)
	UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*role.Role, error)
	DeleteRole(ctx context.Context, id string) error
}

type roleService struct {
	roleRepo role.Repository
}

func NewRoleService(roleRepo role.Repository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*role.Role, error) {
	if req == nil {
		return nil, ierr.NewError("role cannot be nil").
			WithHint("Request body is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r := req.ToRole()
	r.BaseModel = types.GetDefaultBaseModel(ctx)

	if err := s.roleRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *roleService) GetRole(ctx context.Context, id string) (*role.Role, error) {
	if id == "" {
		return nil, ierr.NewError("role id is required").
			WithHint("Role ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.roleRepo.Get(ctx, id)
}

func (s *roleService) ListRoles(ctx context.Context) ([]*role.Role, error) {
	return s.roleRepo.List(ctx)
}

func (s *roleService) UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*role.Role, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.roleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = req.Name
	r.Permissions = req.Permissions
	r.Touch(ctx)

	if err := s.roleRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("role id is required").
			WithHint("Role ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.roleRepo.Delete(ctx, id)
}
