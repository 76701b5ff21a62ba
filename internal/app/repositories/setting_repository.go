package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

// ISettingRepository defines persistence of named configuration values
type ISettingRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Set(ctx context.Context, key, value string) error
}

// SettingRepository handles app_settings database operations
type SettingRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db DBTX) *SettingRepository {
	return &SettingRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Get reads one setting; a missing key is ErrSettingNotFound
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	sql, args, err := r.sb.Select("key", "value", "updated_at").
		From("app_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get setting query: %w", err)
	}

	s := &models.Setting{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error getting setting %s: %w", key, err)
	}
	return s, nil
}

// Set creates or overwrites a setting
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	sql, args, err := r.sb.Insert("app_settings").
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set setting query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error writing setting")
		return fmt.Errorf("error setting %s: %w", key, err)
	}
	return nil
}
