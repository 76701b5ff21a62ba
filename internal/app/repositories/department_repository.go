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

// IDepartmentRepository defines department and year-link persistence
type IDepartmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	GetByYearID(ctx context.Context, yearID int64) ([]*models.Department, error)
	LinkToYear(ctx context.Context, yearID, deptID int64) error
	UnlinkFromYear(ctx context.Context, yearID, deptID int64) error
}

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *DepartmentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Department, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing department list query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	return r.list(ctx, r.sb.Select("id", "name").From("departments").OrderBy("name ASC"))
}

// GetByYearID retrieves the departments linked to a year ordered by name
func (r *DepartmentRepository) GetByYearID(ctx context.Context, yearID int64) ([]*models.Department, error) {
	return r.list(ctx, r.sb.Select("d.id", "d.name").
		From("departments d").
		Join("year_departments yd ON yd.dept_id = d.id").
		Where(squirrel.Eq{"yd.year_id": yearID}).
		OrderBy("d.name ASC"))
}

func (r *DepartmentRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("departments").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d := &models.Department{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error getting department: %w", err)
	}
	return d, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves a department by its exact name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// Create inserts a department and fills in its ID
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("name").
		Values(department.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_name_key") {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Str("name", department.Name).Msg("Error executing create department query")
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// LinkToYear records that a department is offered in a year
func (r *DepartmentRepository) LinkToYear(ctx context.Context, yearID, deptID int64) error {
	sql, args, err := r.sb.Insert("year_departments").
		Columns("year_id", "dept_id").
		Values(yearID, deptID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrLinkAlreadyExists
		case dberrors.IsForeignKeyViolation(err, "year_departments_year_id_fkey"):
			return apperrors.ErrYearNotFound
		case dberrors.IsForeignKeyViolation(err, "year_departments_dept_id_fkey"):
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("yearID", yearID).Int64("deptID", deptID).Msg("Error linking department to year")
		return fmt.Errorf("error linking department: %w", err)
	}
	return nil
}

// UnlinkFromYear removes a year/department link
func (r *DepartmentRepository) UnlinkFromYear(ctx context.Context, yearID, deptID int64) error {
	sql, args, err := r.sb.Delete("year_departments").
		Where(squirrel.Eq{"year_id": yearID, "dept_id": deptID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unlink query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("yearID", yearID).Int64("deptID", deptID).Msg("Error unlinking department from year")
		return fmt.Errorf("error unlinking department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}
