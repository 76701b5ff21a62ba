package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/auth"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// TokenGenerator issues access tokens for an authenticated admin
type TokenGenerator interface {
	GenerateToken(admin *models.Admin) (string, int, error)
}

// LoginResult is returned after a successful login or credential change
type LoginResult struct {
	Token     string
	ExpiresIn int
	Admin     *models.Admin
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, adminID int64, currentPassword, newPassword string) error
	ChangeUsername(ctx context.Context, adminID int64, newUsername, password string) (*LoginResult, error)
	GetProfile(ctx context.Context, adminID int64) (*models.Admin, error)
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type authServiceImpl struct {
	adminRepo repositories.IAdminRepository
	tokens    TokenGenerator
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.IAdminRepository, tokens TokenGenerator, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func validateUsername(username string) error {
	ok := validation.NewStringValidation(username).
		WithMinLength(validation.UsernameMinLength).
		WithMaxLength(validation.UsernameMaxLength).
		WithPattern(validation.CompiledPatterns.Username).
		Validate()
	if !ok {
		return fmt.Errorf("%w: username must be %d-%d characters of letters, digits, '.', '-' or '_'",
			apperrors.ErrValidationFailed, validation.UsernameMinLength, validation.UsernameMaxLength)
	}
	return nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	return nil
}

// Login checks the credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Str("username", username).Msg("Login attempt for unknown admin")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		s.logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(admin)
}

func (s *authServiceImpl) issue(admin *models.Admin) (*LoginResult, error) {
	token, expiresIn, err := s.tokens.GenerateToken(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresIn: expiresIn, Admin: admin}, nil
}

// ChangePassword replaces the admin password after verifying the current one
func (s *authServiceImpl) ChangePassword(ctx context.Context, adminID int64, currentPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(admin.PasswordHash, currentPassword) {
		return apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("adminID", adminID).Msg("Admin password changed")
	return nil
}

// ChangeUsername renames the admin after verifying the password and returns a fresh token
// carrying the new name.
func (s *authServiceImpl) ChangeUsername(ctx context.Context, adminID int64, newUsername, password string) (*LoginResult, error) {
	newUsername = strings.TrimSpace(newUsername)
	if err := validateUsername(newUsername); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "password is incorrect")
	}

	if admin.Username != newUsername {
		if err := s.adminRepo.UpdateUsername(ctx, adminID, newUsername); err != nil {
			return nil, err
		}
		s.logger.Info().Int64("adminID", adminID).Str("username", newUsername).Msg("Admin username changed")
		admin.Username = newUsername
	}

	return s.issue(admin)
}

// GetProfile returns the admin account behind a token
func (s *authServiceImpl) GetProfile(ctx context.Context, adminID int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}

// EnsureDefaultAdmin creates the initial admin account when none exists yet
func (s *authServiceImpl) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := validateUsername(username); err != nil {
		return false, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	id, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		return false, err
	}
	admin.ID = id

	s.logger.Info().Int64("adminID", id).Str("username", username).Msg("Default admin account created")
	return true, nil
}
