package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// SettingService defines the interface for stored application settings
type SettingService interface {
	DefaultStudentFee(ctx context.Context) (*models.DefaultFee, error)
	SetDefaultStudentFee(ctx context.Context, totalFee decimal.Decimal) (*models.DefaultFee, error)
}

type settingServiceImpl struct {
	settingRepo repositories.ISettingRepository
	studentRepo repositories.IStudentRepository
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo repositories.ISettingRepository, studentRepo repositories.IStudentRepository) SettingService {
	return &settingServiceImpl{
		settingRepo: settingRepo,
		studentRepo: studentRepo,
	}
}

// DefaultStudentFee returns the explicit default fee. Until one has been set, the fee of the most
// recently created student is used, and zero on an empty roster.
func (s *settingServiceImpl) DefaultStudentFee(ctx context.Context) (*models.DefaultFee, error) {
	setting, err := s.settingRepo.Get(ctx, models.SettingDefaultStudentFee)
	switch {
	case err == nil:
		fee, perr := decimal.NewFromString(setting.Value)
		if perr != nil {
			return nil, fmt.Errorf("stored default fee %q is not a number: %w", setting.Value, perr)
		}
		return &models.DefaultFee{TotalFee: fee, Source: models.DefaultFeeFromSetting}, nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return nil, err
	}

	fee, found, err := s.studentRepo.LatestFee(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.DefaultFee{TotalFee: decimal.Zero, Source: models.DefaultFeeNone}, nil
	}
	return &models.DefaultFee{TotalFee: fee, Source: models.DefaultFeeFromLatestStudent}, nil
}

// SetDefaultStudentFee stores the fee applied to students created from now on
func (s *settingServiceImpl) SetDefaultStudentFee(ctx context.Context, totalFee decimal.Decimal) (*models.DefaultFee, error) {
	if !validation.ValidAmount(totalFee) {
		return nil, fmt.Errorf("%w: totalFee cannot be negative", apperrors.ErrValidationFailed)
	}
	if err := s.settingRepo.Set(ctx, models.SettingDefaultStudentFee, totalFee.String()); err != nil {
		return nil, err
	}
	return &models.DefaultFee{TotalFee: totalFee, Source: models.DefaultFeeFromSetting}, nil
}
