package service

import (
	"context"
	"testing"

	"github.com/shama2369/trichygold-campaignsc/internal/api/dto"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/testutil"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service EmployeeService
	store   *testutil.InMemoryEmployeeStore
}

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceSuite))
}

func (s *EmployeeServiceSuite) SetupSuite() {
	validator.NewValidator()
}

func (s *EmployeeServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.store = testutil.NewInMemoryEmployeeStore()
	s.service = NewEmployeeService(s.store)
}

func (s *EmployeeServiceSuite) TestCreateEmployee() {
	testCases := []struct {
		name          string
		input         *dto.CreateEmployeeRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			input: &dto.CreateEmployeeRequest{
				Name:        "Priya R",
				Email:       "priya@example.com",
				Designation: "Marketing Executive",
			},
		},
		{
			name:          "nil_request",
			input:         nil,
			expectedError: true,
		},
		{
			name:          "missing_name",
			input:         &dto.CreateEmployeeRequest{Email: "x@example.com"},
			expectedError: true,
		},
		{
			name:          "invalid_email",
			input:         &dto.CreateEmployeeRequest{Name: "Priya R", Email: "not-an-email"},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			created, err := s.service.CreateEmployee(s.ctx, tc.input)
			if tc.expectedError {
				s.Error(err)
				return
			}
			s.NoError(err)

			stored, err := s.store.Get(s.ctx, created.ID)
			s.NoError(err)
			s.Equal(tc.input.Name, stored.Name)
		})
	}
}

func (s *EmployeeServiceSuite) TestUpdateEmployee() {
	created, err := s.service.CreateEmployee(s.ctx, &dto.CreateEmployeeRequest{Name: "Priya R"})
	s.Require().NoError(err)

	updated, err := s.service.UpdateEmployee(s.ctx, created.ID, &dto.UpdateEmployeeRequest{
		Name:        "Priya Raman",
		Designation: "Marketing Manager",
	})
	s.Require().NoError(err)
	s.Equal("Priya Raman", updated.Name)
	s.Equal("Marketing Manager", updated.Designation)
}

func (s *EmployeeServiceSuite) TestDeleteEmployee() {
	created, err := s.service.CreateEmployee(s.ctx, &dto.CreateEmployeeRequest{Name: "Priya R"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteEmployee(s.ctx, created.ID))

	_, err = s.service.GetEmployee(s.ctx, created.ID)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}
