package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

// IReportRepository defines the aggregate queries behind the dashboard and reports
type IReportRepository interface {
	Totals(ctx context.Context, filter models.TransactionFilter) (collection, expense decimal.Decimal, err error)
	CollectionsByYear(ctx context.Context) ([]models.YearStat, error)
	CollectionsByMode(ctx context.Context) ([]models.ModeTotal, error)
	BreakdownRows(ctx context.Context) ([]models.BreakdownRow, error)
	FeeStatusRows(ctx context.Context, filter models.StudentFilter) ([]models.FeeStatusRow, error)
}

// ReportRepository runs read-only aggregate queries
type ReportRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ReportRepository) query(ctx context.Context, q squirrel.SelectBuilder, name string) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", name, err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", name).Msg("Error executing report query")
		return nil, fmt.Errorf("error running %s query: %w", name, err)
	}
	return rows, nil
}

// Totals sums collections and expenses over the same filter
func (r *ReportRepository) Totals(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, decimal.Decimal, error) {
	filter.Type = ""
	q := applyWhere(r.sb.Select().
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE type = ?), 0)", string(models.TransactionCollection))).
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE type = ?), 0)", string(models.TransactionExpense))).
		From("transactions"), transactionConditions("", filter))

	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to build totals query: %w", err)
	}

	var collection, expense decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&collection, &expense); err != nil {
		logger.Error().Err(err).Msg("Error executing totals query")
		return decimal.Zero, decimal.Zero, fmt.Errorf("error running totals query: %w", err)
	}
	return collection, expense, nil
}

// CollectionsByYear sums collections per year name, ordered by name, for years with collections
func (r *ReportRepository) CollectionsByYear(ctx context.Context) ([]models.YearStat, error) {
	rows, err := r.query(ctx, r.sb.Select("sy.name", "SUM(t.amount)").
		From("transactions t").
		Join("student_years sy ON t.year_id = sy.id").
		Where(squirrel.Eq{"t.type": string(models.TransactionCollection)}).
		GroupBy("sy.name").
		OrderBy(`sy.name COLLATE "C" ASC`), "collections by year")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.YearStat{}
	for rows.Next() {
		var s models.YearStat
		if err := rows.Scan(&s.Year, &s.Total); err != nil {
			return nil, fmt.Errorf("error scanning year stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CollectionsByMode sums collections per lower-cased payment mode
func (r *ReportRepository) CollectionsByMode(ctx context.Context) ([]models.ModeTotal, error) {
	rows, err := r.query(ctx, r.sb.Select("COALESCE(LOWER(payment_mode), '')", "SUM(amount)").
		From("transactions").
		Where(squirrel.Eq{"type": string(models.TransactionCollection)}).
		GroupBy("COALESCE(LOWER(payment_mode), '')"), "collections by mode")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.ModeTotal{}
	for rows.Next() {
		var m models.ModeTotal
		if err := rows.Scan(&m.Mode, &m.Total); err != nil {
			return nil, fmt.Errorf("error scanning mode total: %w", err)
		}
		totals = append(totals, m)
	}
	return totals, rows.Err()
}

// BreakdownRows returns collection subtotals grouped by year, department and mode.
// Collections without a matching year and department are left out by the inner joins.
func (r *ReportRepository) BreakdownRows(ctx context.Context) ([]models.BreakdownRow, error) {
	rows, err := r.query(ctx, r.sb.Select("sy.name", "d.name", "COALESCE(t.payment_mode, '')", "SUM(t.amount)").
		From("transactions t").
		Join("student_years sy ON t.year_id = sy.id").
		Join("departments d ON t.department_id = d.id").
		Where(squirrel.Eq{"t.type": string(models.TransactionCollection)}).
		GroupBy("sy.name", "d.name", "t.payment_mode").
		OrderBy(`sy.name COLLATE "C" ASC`, `d.name COLLATE "C" ASC`), "breakdown")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.BreakdownRow{}
	for rows.Next() {
		var row models.BreakdownRow
		if err := rows.Scan(&row.YearName, &row.DeptName, &row.Mode, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning breakdown row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// FeeStatusRows summarises fee accounts per year and department
func (r *ReportRepository) FeeStatusRows(ctx context.Context, filter models.StudentFilter) ([]models.FeeStatusRow, error) {
	q := r.sb.Select(
		"sy.name", "d.name", "COUNT(*)", "COUNT(*) FILTER (WHERE s.is_paid)",
		"COALESCE(SUM(s.total_fee), 0)", "COALESCE(SUM(s.amount_paid), 0)",
	).
		From("students s").
		Join("student_years sy ON s.year_id = sy.id").
		Join("departments d ON s.department_id = d.id")
	q = applyWhere(q, studentConditions("s.", filter)).
		GroupBy("sy.name", "d.name").
		OrderBy(`sy.name COLLATE "C" ASC`, `d.name COLLATE "C" ASC`)

	rows, err := r.query(ctx, q, "fee status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.FeeStatusRow{}
	for rows.Next() {
		var row models.FeeStatusRow
		if err := rows.Scan(&row.YearName, &row.DeptName, &row.Students, &row.PaidCount, &row.TotalFee, &row.AmountPaid); err != nil {
			return nil, fmt.Errorf("error scanning fee status row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
