package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/auth"
)

// MaintenanceService defines operator tasks run from the command line
type MaintenanceService interface {
	FactoryReset(ctx context.Context, username, password string) (map[string]int64, error)
	PurgeCollections(ctx context.Context, yearName, deptName string) (int64, error)
}

type maintenanceServiceImpl struct {
	maintenanceRepo repositories.IMaintenanceRepository
	yearRepo        repositories.IYearRepository
	deptRepo        repositories.IDepartmentRepository
	txRepo          repositories.ITransactionRepository
	logger          zerolog.Logger
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(
	maintenanceRepo repositories.IMaintenanceRepository,
	yearRepo repositories.IYearRepository,
	deptRepo repositories.IDepartmentRepository,
	txRepo repositories.ITransactionRepository,
	logger zerolog.Logger,
) MaintenanceService {
	return &maintenanceServiceImpl{
		maintenanceRepo: maintenanceRepo,
		yearRepo:        yearRepo,
		deptRepo:        deptRepo,
		txRepo:          txRepo,
		logger:          logger,
	}
}

// FactoryReset wipes all finance data and restores a single admin with the given credentials
func (s *maintenanceServiceImpl) FactoryReset(ctx context.Context, username, password string) (map[string]int64, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cleared, err := s.maintenanceRepo.FactoryReset(ctx, &models.Admin{Username: username, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	s.logger.Warn().Interface("cleared", cleared).Str("username", username).Msg("Factory reset completed")
	return cleared, nil
}

// PurgeCollections deletes the collections booked to one year/department pair, looked up by name
func (s *maintenanceServiceImpl) PurgeCollections(ctx context.Context, yearName, deptName string) (int64, error) {
	yearName = strings.TrimSpace(yearName)
	deptName = strings.TrimSpace(deptName)
	if yearName == "" || deptName == "" {
		return 0, fmt.Errorf("%w: year and department names are required", apperrors.ErrValidationFailed)
	}

	year, err := s.yearRepo.GetByName(ctx, yearName)
	if err != nil {
		return 0, err
	}
	dept, err := s.deptRepo.GetByName(ctx, deptName)
	if err != nil {
		return 0, err
	}

	deleted, err := s.txRepo.DeleteCollections(ctx, year.ID, dept.ID)
	if err != nil {
		return 0, err
	}

	s.logger.Warn().
		Str("year", year.Name).
		Str("department", dept.Name).
		Int64("deleted", deleted).
		Msg("Collections purged")
	return deleted, nil
}
