package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/db"
	"github.com/yigit/collegefinance/internal/pkg/logger"
)

// resetTables lists data tables in dependency order, children first
var resetTables = []string{"transactions", "students", "year_departments", "departments", "student_years", "app_settings"}

// IMaintenanceRepository defines operator-only bulk operations
type IMaintenanceRepository interface {
	FactoryReset(ctx context.Context, admin *models.Admin) (map[string]int64, error)
}

// MaintenanceRepository holds operator-only bulk operations
type MaintenanceRepository struct {
	db DBTX
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// FactoryReset clears all finance data and replaces the admin account with the given one.
// Everything happens in one transaction.
func (r *MaintenanceRepository) FactoryReset(ctx context.Context, admin *models.Admin) (map[string]int64, error) {
	cleared := make(map[string]int64, len(resetTables))

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range resetTables {
			tag, err := tx.Exec(ctx, "DELETE FROM "+table)
			if err != nil {
				return fmt.Errorf("error clearing %s: %w", table, err)
			}
			cleared[table] = tag.RowsAffected()
		}

		if _, err := tx.Exec(ctx, "DELETE FROM admin"); err != nil {
			return fmt.Errorf("error clearing admin: %w", err)
		}
		err := tx.QueryRow(ctx,
			"INSERT INTO admin (username, password_hash) VALUES ($1, $2) RETURNING id",
			admin.Username, admin.PasswordHash,
		).Scan(&admin.ID)
		if err != nil {
			return fmt.Errorf("error recreating admin: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Factory reset failed")
		return nil, err
	}
	return cleared, nil
}
