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

// ITransactionRepository defines ledger persistence
type ITransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	DeleteCollections(ctx context.Context, yearID, deptID int64) (int64, error)
}

// TransactionRepository handles transactions database operations
type TransactionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var transactionColumns = []string{
	"t.id", "t.type", "t.amount", "t.payment_mode", "t.date", "t.description",
	"t.spent_by", "t.year_id", "t.department_id", "t.created_at", "sy.name", "d.name",
}

func (r *TransactionRepository) selectTransactions() squirrel.SelectBuilder {
	return r.sb.Select(transactionColumns...).
		From("transactions t").
		LeftJoin("student_years sy ON t.year_id = sy.id").
		LeftJoin("departments d ON t.department_id = d.id")
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	t := &models.Transaction{}
	var txType string
	var mode *string
	err := row.Scan(&t.ID, &txType, &t.Amount, &mode, &t.Date, &t.Description,
		&t.SpentBy, &t.YearID, &t.DepartmentID, &t.CreatedAt, &t.YearName, &t.DepartmentName)
	if err != nil {
		return nil, err
	}
	t.Type = models.TransactionType(txType)
	if mode != nil {
		t.PaymentMode = models.NormalizePaymentMode(*mode)
	}
	return t, nil
}

// Create inserts a ledger entry and fills in its ID and creation time
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	var mode interface{}
	if tx.PaymentMode != "" {
		mode = string(tx.PaymentMode)
	}

	sql, args, err := r.sb.Insert("transactions").
		Columns("type", "amount", "payment_mode", "date", "description", "spent_by", "year_id", "department_id").
		Values(string(tx.Type), tx.Amount, mode, tx.Date, tx.Description, tx.SpentBy, tx.YearID, tx.DepartmentID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create transaction query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, "transactions_year_id_fkey"):
			return apperrors.ErrYearNotFound
		case dberrors.IsForeignKeyViolation(err, "transactions_department_id_fkey"):
			return apperrors.ErrDepartmentNotFound
		case dberrors.IsCheckViolation(err):
			return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
		logger.Error().Err(err).Msg("Error executing create transaction query")
		return fmt.Errorf("error creating transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a ledger entry with its year and department names
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	sql, args, err := r.selectTransactions().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get transaction query: %w", err)
	}

	t, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("error getting transaction: %w", err)
	}
	return t, nil
}

// List retrieves ledger entries matching the filter, newest date first
func (r *TransactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	q := applyWhere(r.selectTransactions(), transactionConditions("t.", filter)).
		OrderBy("t.date DESC", "t.id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list transactions query")
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	items := []*models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return items, nil
}

// DeleteCollections removes every collection booked to a year/department pair
func (r *TransactionRepository) DeleteCollections(ctx context.Context, yearID, deptID int64) (int64, error) {
	sql, args, err := r.sb.Delete("transactions").
		Where(squirrel.Eq{
			"type":          string(models.TransactionCollection),
			"year_id":       yearID,
			"department_id": deptID,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete collections query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("yearID", yearID).Int64("deptID", deptID).Msg("Error deleting collections")
		return 0, fmt.Errorf("error deleting collections: %w", err)
	}
	return tag.RowsAffected(), nil
}
