package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/dberrors"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

// IYearRepository defines academic year persistence
type IYearRepository interface {
	GetAll(ctx context.Context) ([]*models.AcademicYear, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetByName(ctx context.Context, name string) (*models.AcademicYear, error)
	Create(ctx context.Context, year *models.AcademicYear) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// YearRepository handles student_years database operations
type YearRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewYearRepository creates a new YearRepository
func NewYearRepository(db DBTX) *YearRepository {
	return &YearRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// GetAll retrieves all years ordered by name
func (r *YearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	sql, args, err := r.sb.Select("id", "name", "is_active").
		From("student_years").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all years query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all years query")
		return nil, fmt.Errorf("error querying years: %w", err)
	}
	defer rows.Close()

	years := []*models.AcademicYear{}
	for rows.Next() {
		y := &models.AcademicYear{}
		if err := rows.Scan(&y.ID, &y.Name, &y.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning year row: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year rows: %w", err)
	}
	return years, nil
}

func (r *YearRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.AcademicYear, error) {
	sql, args, err := r.sb.Select("id", "name", "is_active").
		From("student_years").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get year query: %w", err)
	}

	y := &models.AcademicYear{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&y.ID, &y.Name, &y.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrYearNotFound
		}
		return nil, fmt.Errorf("error getting year: %w", err)
	}
	return y, nil
}

// GetByID retrieves a year by ID
func (r *YearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves a year by its exact name
func (r *YearRepository) GetByName(ctx context.Context, name string) (*models.AcademicYear, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// Create inserts a year and fills in its ID
func (r *YearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	sql, args, err := r.sb.Insert("student_years").
		Columns("name", "is_active").
		Values(year.Name, year.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create year query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&year.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_years_name_key") {
			return apperrors.ErrYearAlreadyExists
		}
		logger.Error().Err(err).Str("name", year.Name).Msg("Error executing create year query")
		return fmt.Errorf("error creating year: %w", err)
	}
	return nil
}

// SetActive flips the active flag of a year
func (r *YearRepository) SetActive(ctx context.Context, id int64, active bool) error {
	sql, args, err := r.sb.Update("student_years").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update year query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("yearID", id).Msg("Error updating year")
		return fmt.Errorf("error updating year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrYearNotFound
	}
	return nil
}
