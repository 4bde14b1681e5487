package service

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/user"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*user.User, error)
	GetUser(ctx context.Context, id string) (*user.User, error)
	ListUsers(ctx context.Context) ([]*user.User, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepo user.Repository
	roleRepo role.Repository
}

func NewUserService(userRepo user.Repository, roleRepo role.Repository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*user.User, error) {
	if req == nil {
		return nil, ierr.NewError("user cannot be nil").
			WithHint("Request body is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.RoleID != "" {
		if _, err := s.roleRepo.Get(ctx, req.RoleID); err != nil {
			return nil, err
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewErrorf("user with email %s already exists", req.Email).
			WithHint("A user with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	u := req.ToUser()
	u.BaseModel = types.GetDefaultBaseModel(ctx)

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*user.User, error) {
	if id == "" {
		return nil, ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.userRepo.Get(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoleID != "" && req.RoleID != u.RoleID {
		if _, err := s.roleRepo.Get(ctx, req.RoleID); err != nil {
			return nil, err
		}
	}

	u.Name = req.Name
	u.Email = req.Email
	u.RoleID = req.RoleID
	u.Touch(ctx)

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.userRepo.Delete(ctx, id)
}
