package service

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	"github.com/shama2369/trichygold-campaignsc/internal/domain/employee"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*employee.Employee, error)
	GetEmployee(ctx context.Context, id string) (*employee.Employee, error)
	ListEmployees(ctx context.Context) ([]*employee.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type employeeService struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*employee.Employee, error) {
	if req == nil {
		return nil, ierr.NewError("employee cannot be nil").
			WithHint("Request body is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToEmployee()
	e.BaseModel = types.GetDefaultBaseModel(ctx)

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (*employee.Employee, error) {
	if id == "" {
		return nil, ierr.NewError("employee id is required").
			WithHint("Employee ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.employeeRepo.Get(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]*employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.employeeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Name = req.Name
	e.Email = req.Email
	e.Phone = req.Phone
	e.Designation = req.Designation
	e.Touch(ctx)

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("employee id is required").
			WithHint("Employee ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.employeeRepo.Delete(ctx, id)
}
