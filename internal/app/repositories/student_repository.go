package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/db"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/dberrors"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

// IStudentRepository defines roster and fee account persistence
type IStudentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	CreateMany(ctx context.Context, students []*models.Student) error
	UpdateIdentity(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	UpdateFees(ctx context.Context, id int64, totalFee, amountPaid decimal.Decimal, isPaid bool) error
	BulkUpdateFees(ctx context.Context, filter models.StudentFilter, totalFee decimal.Decimal) (int64, error)
	LatestFee(ctx context.Context) (decimal.Decimal, bool, error)
}

// StudentRepository handles students database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var studentColumns = []string{"id", "name", "year_id", "department_id", "is_paid", "total_fee", "amount_paid"}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.YearID, &s.DepartmentID, &s.IsPaid, &s.TotalFee, &s.AmountPaid)
	return s, err
}

// mapStudentWriteError translates constraint failures on students writes
func mapStudentWriteError(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, "students_year_id_fkey"):
		return apperrors.ErrYearNotFound
	case dberrors.IsForeignKeyViolation(err, "students_department_id_fkey"):
		return apperrors.ErrDepartmentNotFound
	case dberrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

// List retrieves students matching the filter ordered by name
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	q := applyWhere(r.sb.Select(studentColumns...).From("students"), studentConditions("", filter)).
		OrderBy("name ASC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return s, nil
}

// CreateMany inserts all students in one transaction and fills in their IDs
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, s := range students {
			sql, args, err := r.sb.Insert("students").
				Columns("name", "year_id", "department_id", "total_fee", "amount_paid", "is_paid").
				Values(s.Name, s.YearID, s.DepartmentID, s.TotalFee, s.AmountPaid, s.IsPaid).
				Suffix("RETURNING id").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create student query: %w", err)
			}

			if err := tx.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
				if mapped := mapStudentWriteError(err); mapped != nil {
					return mapped
				}
				logger.Error().Err(err).Str("name", s.Name).Msg("Error executing create student query")
				return fmt.Errorf("error creating student: %w", err)
			}
		}
		return nil
	})
}

// UpdateIdentity changes name, year and department; fee fields are left alone
func (r *StudentRepository) UpdateIdentity(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("year_id", student.YearID).
		Set("department_id", student.DepartmentID).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapStudentWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error updating student")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateFees overwrites the fee pair and paid flag of one student
func (r *StudentRepository) UpdateFees(ctx context.Context, id int64, totalFee, amountPaid decimal.Decimal, isPaid bool) error {
	sql, args, err := r.sb.Update("students").
		Set("total_fee", totalFee).
		Set("amount_paid", amountPaid).
		Set("is_paid", isPaid).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fees query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapStudentWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student fees")
		return fmt.Errorf("error updating fees: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// BulkUpdateFees sets total_fee on every matching student and recomputes is_paid
// against each row's existing amount_paid. It returns the number of rows changed.
func (r *StudentRepository) BulkUpdateFees(ctx context.Context, filter models.StudentFilter, totalFee decimal.Decimal) (int64, error) {
	q := r.sb.Update("students").
		Set("total_fee", totalFee).
		Set("is_paid", squirrel.Expr("(? - amount_paid) <= 0", totalFee))
	if conds := studentConditions("", filter); len(conds) > 0 {
		q = q.Where(conds)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk fee query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapStudentWriteError(err); mapped != nil {
			return 0, mapped
		}
		logger.Error().Err(err).Msg("Error executing bulk fee update")
		return 0, fmt.Errorf("error updating fees: %w", err)
	}
	return tag.RowsAffected(), nil
}

// LatestFee returns the total fee of the most recently created student
func (r *StudentRepository) LatestFee(ctx context.Context) (decimal.Decimal, bool, error) {
	sql, args, err := r.sb.Select("total_fee").
		From("students").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to build latest fee query: %w", err)
	}

	var fee decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&fee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("error reading latest fee: %w", err)
	}
	return fee, true, nil
}
