package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
)

// ErrNotFound is the shared not-found error of the data layer
var ErrNotFound = apperrors.ErrResourceNotFound

// DBTX is the storage handle every repository runs its statements on.
// *pgxpool.Pool and pgx.Tx both satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	YearRepository        *YearRepository
	DepartmentRepository  *DepartmentRepository
	TransactionRepository *TransactionRepository
	StudentRepository     *StudentRepository
	SettingRepository     *SettingRepository
	ReportRepository      *ReportRepository
	MaintenanceRepository *MaintenanceRepository
}

// NewRepositories initializes all repositories on the same storage handle
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		YearRepository:        NewYearRepository(db),
		DepartmentRepository:  NewDepartmentRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		StudentRepository:     NewStudentRepository(db),
		SettingRepository:     NewSettingRepository(db),
		ReportRepository:      NewReportRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
	}
}

// statementBuilder returns a squirrel builder using PostgreSQL placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
