package services

import (
	"context"

	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
)

// DepartmentService defines the interface for the global department list
type DepartmentService interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	Create(ctx context.Context, name string) (*models.Department, error)
}

type departmentServiceImpl struct {
	deptRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(deptRepo repositories.IDepartmentRepository) DepartmentService {
	return &departmentServiceImpl{deptRepo: deptRepo}
}

func (s *departmentServiceImpl) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.deptRepo.GetAll(ctx)
}

// Create adds a department; names are unique
func (s *departmentServiceImpl) Create(ctx context.Context, name string) (*models.Department, error) {
	name, err := validateName("department", name)
	if err != nil {
		return nil, err
	}

	dept := &models.Department{Name: name}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}
