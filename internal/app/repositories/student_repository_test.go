package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
)

func TestBulkUpdateFeesStatement(t *testing.T) {
	const base = "UPDATE students SET total_fee = $1, is_paid = ($2 - amount_paid) <= 0"

	tests := []struct {
		name     string
		filter   models.StudentFilter
		tag      string
		wantSQL  string
		wantTail []any
		wantN    int64
	}{
		{
			name:    "every student",
			filter:  models.StudentFilter{},
			tag:     "UPDATE 6",
			wantSQL: base,
			wantN:   6,
		},
		{
			name:     "one class",
			filter:   models.StudentFilter{Year: models.IDEquals(2), Department: models.IDEquals(5)},
			tag:      "UPDATE 2",
			wantSQL:  base + " WHERE (year_id = $3 AND department_id = $4)",
			wantTail: []any{int64(2), int64(5)},
			wantN:    2,
		},
		{
			name:    "malformed department",
			filter:  models.StudentFilter{Department: models.ParseIDFilter("x")},
			tag:     "UPDATE 0",
			wantSQL: base + " WHERE (1 = 0)",
			wantN:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{tag: tt.tag}
			n, err := NewStudentRepository(db).BulkUpdateFees(context.Background(), tt.filter, dec("1200"))
			if err != nil {
				t.Fatalf("BulkUpdateFees() error = %v", err)
			}
			if n != tt.wantN {
				t.Errorf("BulkUpdateFees() = %d, want %d", n, tt.wantN)
			}

			got := db.last()
			if got.sql != tt.wantSQL {
				t.Errorf("sql =\n  %s\nwant\n  %s", got.sql, tt.wantSQL)
			}
			if len(got.args) != 2+len(tt.wantTail) {
				t.Fatalf("args = %#v, want fee twice then %v", got.args, tt.wantTail)
			}
			// The paid flag compares the new fee against the stored payment.
			for i := 0; i < 2; i++ {
				fee, ok := got.args[i].(decimal.Decimal)
				if !ok || !fee.Equal(dec("1200")) {
					t.Errorf("args[%d] = %#v, want 1200", i, got.args[i])
				}
			}
			for i, want := range tt.wantTail {
				if got.args[2+i] != want {
					t.Errorf("args[%d] = %#v, want %#v", 2+i, got.args[2+i], want)
				}
			}
		})
	}
}

func TestLatestFeeQuery(t *testing.T) {
	db := &recordingDB{rows: [][]any{{dec("15000")}}}
	fee, found, err := NewStudentRepository(db).LatestFee(context.Background())
	if err != nil {
		t.Fatalf("LatestFee() error = %v", err)
	}
	assertStatement(t, db.last(), "SELECT total_fee FROM students ORDER BY id DESC LIMIT 1", nil)
	if !found {
		t.Fatal("LatestFee() found = false, want true")
	}
	assertDecimal(t, "fee", fee, "15000")

	fee, found, err = NewStudentRepository(&recordingDB{}).LatestFee(context.Background())
	if err != nil {
		t.Fatalf("LatestFee(empty) error = %v", err)
	}
	if found || !fee.IsZero() {
		t.Errorf("LatestFee(empty) = %s, %v, want 0, false", fee, found)
	}
}
