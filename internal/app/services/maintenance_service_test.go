package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
)

func newMaintenance(store *memStore) MaintenanceService {
	return NewMaintenanceService(memMaintenance{store}, memYears{store}, memDepts{store}, memTransactions{store}, zerolog.Nop())
}

func TestPurgeCollections(t *testing.T) {
	f := newLedgerFixture(t)
	f.collect(t, "1000", models.PaymentCash, f.firstID, f.cseID)
	f.collect(t, "500", models.PaymentGpay, f.firstID, f.cseID)
	f.collect(t, "300", models.PaymentCash, f.firstID, f.eceID)
	f.spend(t, "50")
	svc := newMaintenance(f.store)
	ctx := context.Background()

	deleted, err := svc.PurgeCollections(ctx, "1st Year", "CSE")
	if err != nil {
		t.Fatalf("PurgeCollections() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	left, _ := f.txs.List(ctx, models.TransactionFilter{})
	if len(left) != 2 {
		t.Errorf("%d transactions left, want 2", len(left))
	}

	if _, err := svc.PurgeCollections(ctx, "9th Year", "CSE"); !errors.Is(err, apperrors.ErrYearNotFound) {
		t.Errorf("unknown year error = %v, want ErrYearNotFound", err)
	}
	if _, err := svc.PurgeCollections(ctx, "1st Year", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("missing department error = %v, want validation failure", err)
	}
}

func TestFactoryReset(t *testing.T) {
	f := newLedgerFixture(t)
	f.collect(t, "1000", models.PaymentCash, f.firstID, f.cseID)
	svc := newMaintenance(f.store)
	ctx := context.Background()

	if _, err := svc.FactoryReset(ctx, "admin", "123"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("short password error = %v, want validation failure", err)
	}

	cleared, err := svc.FactoryReset(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("FactoryReset() error = %v", err)
	}
	if cleared["transactions"] != 1 || cleared["student_years"] != 2 || cleared["departments"] != 2 {
		t.Errorf("cleared = %v", cleared)
	}

	years, _ := f.years.GetAll(ctx)
	if len(years) != 0 {
		t.Errorf("%d years left after reset", len(years))
	}
	count, _ := memAdmins{f.store}.Count(ctx)
	if count != 1 {
		t.Errorf("admin count = %d, want 1", count)
	}
}
