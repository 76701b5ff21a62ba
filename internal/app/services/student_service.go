package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// NewStudents describes one or more roster entries to create in the same class
type NewStudents struct {
	Names        []string
	YearID       int64
	DepartmentID int64
	// TotalFee overrides the default fee when set
	TotalFee *decimal.Decimal
}

// StudentService defines the interface for the roster and its fee ledger
type StudentService interface {
	List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	Create(ctx context.Context, input NewStudents) ([]*models.Student, error)
	UpdateIdentity(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	UpdateFees(ctx context.Context, id int64, totalFee, amountPaid decimal.Decimal) (*models.Student, error)
	BulkUpdateFees(ctx context.Context, filter models.StudentFilter, totalFee decimal.Decimal) (int64, error)
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	settings    SettingService
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, settings SettingService, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		settings:    settings,
		logger:      logger,
	}
}

func validateClass(yearID, departmentID int64) error {
	if yearID <= 0 {
		return fmt.Errorf("%w: yearId must be positive", apperrors.ErrValidationFailed)
	}
	if departmentID <= 0 {
		return fmt.Errorf("%w: departmentId must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

func validateFees(totalFee, amountPaid decimal.Decimal) error {
	if !validation.ValidAmount(totalFee) {
		return fmt.Errorf("%w: totalFee cannot be negative", apperrors.ErrValidationFailed)
	}
	if !validation.ValidAmount(amountPaid) {
		return fmt.Errorf("%w: amountPaid cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// List returns students ordered by name
func (s *studentServiceImpl) List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, filter)
}

// Create adds every named student to the class in one transaction. New accounts start with
// nothing paid and the default fee unless a fee is given.
func (s *studentServiceImpl) Create(ctx context.Context, input NewStudents) ([]*models.Student, error) {
	if len(input.Names) == 0 {
		return nil, fmt.Errorf("%w: at least one name is required", apperrors.ErrValidationFailed)
	}
	if err := validateClass(input.YearID, input.DepartmentID); err != nil {
		return nil, err
	}

	var fee decimal.Decimal
	if input.TotalFee != nil {
		fee = *input.TotalFee
		if !validation.ValidAmount(fee) {
			return nil, fmt.Errorf("%w: totalFee cannot be negative", apperrors.ErrValidationFailed)
		}
	} else {
		def, err := s.settings.DefaultStudentFee(ctx)
		if err != nil {
			return nil, err
		}
		fee = def.TotalFee
	}

	students := make([]*models.Student, 0, len(input.Names))
	for _, raw := range input.Names {
		name, err := validateName("student", raw)
		if err != nil {
			return nil, err
		}
		students = append(students, &models.Student{
			Name:         name,
			YearID:       input.YearID,
			DepartmentID: input.DepartmentID,
			TotalFee:     fee,
			AmountPaid:   decimal.Zero,
			IsPaid:       models.IsFeeSettled(fee, decimal.Zero),
		})
	}

	if err := s.studentRepo.CreateMany(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

// UpdateIdentity changes name and class; the fee account is untouched
func (s *studentServiceImpl) UpdateIdentity(ctx context.Context, student *models.Student) (*models.Student, error) {
	name, err := validateName("student", student.Name)
	if err != nil {
		return nil, err
	}
	if err := validateClass(student.YearID, student.DepartmentID); err != nil {
		return nil, err
	}
	student.Name = name

	if err := s.studentRepo.UpdateIdentity(ctx, student); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, student.ID)
}

func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// UpdateFees overwrites the full fee pair of one student and recomputes the paid flag
func (s *studentServiceImpl) UpdateFees(ctx context.Context, id int64, totalFee, amountPaid decimal.Decimal) (*models.Student, error) {
	if err := validateFees(totalFee, amountPaid); err != nil {
		return nil, err
	}

	isPaid := models.IsFeeSettled(totalFee, amountPaid)
	if err := s.studentRepo.UpdateFees(ctx, id, totalFee, amountPaid, isPaid); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// BulkUpdateFees sets the fee of every matching student. The stored default fee is left alone.
func (s *studentServiceImpl) BulkUpdateFees(ctx context.Context, filter models.StudentFilter, totalFee decimal.Decimal) (int64, error) {
	if !validation.ValidAmount(totalFee) {
		return 0, fmt.Errorf("%w: totalFee cannot be negative", apperrors.ErrValidationFailed)
	}

	updated, err := s.studentRepo.BulkUpdateFees(ctx, filter, totalFee)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("updated", updated).Str("totalFee", totalFee.String()).Msg("Bulk fee update applied")
	return updated, nil
}
