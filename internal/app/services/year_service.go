package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// YearService defines the interface for academic year operations
type YearService interface {
	GetAll(ctx context.Context) ([]*models.AcademicYear, error)
	Create(ctx context.Context, name string) (*models.AcademicYear, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.AcademicYear, error)
	GetDepartments(ctx context.Context, yearID int64) ([]*models.Department, error)
	UpdateDepartmentLink(ctx context.Context, yearID, deptID int64, action models.LinkAction) error
}

type yearServiceImpl struct {
	yearRepo repositories.IYearRepository
	deptRepo repositories.IDepartmentRepository
}

// NewYearService creates a new YearService
func NewYearService(yearRepo repositories.IYearRepository, deptRepo repositories.IDepartmentRepository) YearService {
	return &yearServiceImpl{
		yearRepo: yearRepo,
		deptRepo: deptRepo,
	}
}

// validateName trims a year, department or student name and checks its length
func validateName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name cannot be empty", apperrors.ErrValidationFailed, kind)
	}
	if !validation.ValidName(name) {
		return "", fmt.Errorf("%w: %s name must be at most %d characters",
			apperrors.ErrValidationFailed, kind, validation.NameMaxLength)
	}
	return name, nil
}

func (s *yearServiceImpl) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetAll(ctx)
}

// Create adds a new, active academic year
func (s *yearServiceImpl) Create(ctx context.Context, name string) (*models.AcademicYear, error) {
	name, err := validateName("year", name)
	if err != nil {
		return nil, err
	}

	year := &models.AcademicYear{Name: name, IsActive: true}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

func (s *yearServiceImpl) SetActive(ctx context.Context, id int64, active bool) (*models.AcademicYear, error) {
	if err := s.yearRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.yearRepo.GetByID(ctx, id)
}

// GetDepartments lists the departments offered in a year, by name
func (s *yearServiceImpl) GetDepartments(ctx context.Context, yearID int64) ([]*models.Department, error) {
	if _, err := s.yearRepo.GetByID(ctx, yearID); err != nil {
		return nil, err
	}
	return s.deptRepo.GetByYearID(ctx, yearID)
}

// UpdateDepartmentLink adds or removes a department from a year
func (s *yearServiceImpl) UpdateDepartmentLink(ctx context.Context, yearID, deptID int64, action models.LinkAction) error {
	switch action {
	case models.LinkAdd:
		return s.deptRepo.LinkToYear(ctx, yearID, deptID)
	case models.LinkRemove:
		return s.deptRepo.UnlinkFromYear(ctx, yearID, deptID)
	default:
		return fmt.Errorf("%w: action must be 'add' or 'remove'", apperrors.ErrValidationFailed)
	}
}
