package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
)

func assertDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

func TestFoldModeStats(t *testing.T) {
	tests := []struct {
		name     string
		rows     []models.ModeTotal
		wantCash string
		wantGpay string
	}{
		{
			name:     "no collections",
			wantCash: "0",
			wantGpay: "0",
		},
		{
			name: "mode matched case-insensitively",
			rows: []models.ModeTotal{
				{Mode: "cash", Total: dec("1000")},
				{Mode: "CASH", Total: dec("250.50")},
				{Mode: "GPay", Total: dec("500")},
			},
			wantCash: "1250.50",
			wantGpay: "500",
		},
		{
			name: "unknown and missing modes are dropped",
			rows: []models.ModeTotal{
				{Mode: "cheque", Total: dec("700")},
				{Mode: "", Total: dec("300")},
				{Mode: "gpay", Total: dec("10")},
			},
			wantCash: "0",
			wantGpay: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldModeStats(tt.rows)
			assertDecimal(t, "cash", got.Cash, tt.wantCash)
			assertDecimal(t, "gpay", got.Gpay, tt.wantGpay)
		})
	}
}

func TestBuildBreakdownGroupsInQueryOrder(t *testing.T) {
	rows := []models.BreakdownRow{
		{YearName: "1st Year", DeptName: "CSE", Mode: "cash", Total: dec("1000")},
		{YearName: "1st Year", DeptName: "CSE", Mode: "gpay", Total: dec("500")},
		{YearName: "1st Year", DeptName: "ECE", Mode: "cash", Total: dec("200")},
		{YearName: "2nd Year", DeptName: "CSE", Mode: "gpay", Total: dec("300")},
	}

	got := BuildBreakdown(rows)
	if len(got) != 2 {
		t.Fatalf("len(years) = %d, want 2", len(got))
	}
	if got[0].YearName != "1st Year" || got[1].YearName != "2nd Year" {
		t.Fatalf("year order = [%s %s], want [1st Year 2nd Year]", got[0].YearName, got[1].YearName)
	}
	if len(got[0].Departments) != 2 || got[0].Departments[0].DeptName != "CSE" || got[0].Departments[1].DeptName != "ECE" {
		t.Fatalf("1st Year departments = %+v", got[0].Departments)
	}

	cse := got[0].Departments[0]
	assertDecimal(t, "CSE cash", cse.Cash, "1000")
	assertDecimal(t, "CSE gpay", cse.Gpay, "500")
	assertDecimal(t, "CSE total", cse.Total, "1500")

	ece := got[0].Departments[1]
	assertDecimal(t, "ECE gpay", ece.Gpay, "0")
	assertDecimal(t, "ECE total", ece.Total, "200")

	assertDecimal(t, "grand total", BreakdownGrandTotal(got), "2000")
}

func TestBuildBreakdownTotalsEqualModeSums(t *testing.T) {
	rows := []models.BreakdownRow{
		{YearName: "A", DeptName: "X", Mode: "cash", Total: dec("1.10")},
		{YearName: "A", DeptName: "X", Mode: "GPAY", Total: dec("2.20")},
		{YearName: "A", DeptName: "Y", Mode: "gpay", Total: dec("3.30")},
		{YearName: "B", DeptName: "X", Mode: "Cash", Total: dec("4.40")},
	}

	for _, y := range BuildBreakdown(rows) {
		for _, d := range y.Departments {
			if !d.Total.Equal(d.Cash.Add(d.Gpay)) {
				t.Errorf("%s/%s total %s != cash %s + gpay %s", y.YearName, d.DeptName, d.Total, d.Cash, d.Gpay)
			}
		}
	}
}

func TestBuildBreakdownUnknownModeCountsTowardTotalOnly(t *testing.T) {
	rows := []models.BreakdownRow{
		{YearName: "1st Year", DeptName: "CSE", Mode: "cash", Total: dec("100")},
		{YearName: "1st Year", DeptName: "CSE", Mode: "", Total: dec("40")},
		{YearName: "1st Year", DeptName: "CSE", Mode: "cheque", Total: dec("60")},
	}

	got := BuildBreakdown(rows)
	d := got[0].Departments[0]
	assertDecimal(t, "cash", d.Cash, "100")
	assertDecimal(t, "gpay", d.Gpay, "0")
	assertDecimal(t, "total", d.Total, "200")
}

func TestBuildBreakdownEmpty(t *testing.T) {
	got := BuildBreakdown(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("BuildBreakdown(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestBuildFeeStatus(t *testing.T) {
	rows := []models.FeeStatusRow{
		{YearName: "1st Year", DeptName: "CSE", Students: 3, PaidCount: 1, TotalFee: dec("1500"), AmountPaid: dec("900")},
		{YearName: "1st Year", DeptName: "ECE", Students: 2, PaidCount: 2, TotalFee: dec("1000"), AmountPaid: dec("1100")},
		{YearName: "2nd Year", DeptName: "CSE", Students: 1, PaidCount: 0, TotalFee: dec("500"), AmountPaid: dec("0")},
	}

	got := BuildFeeStatus(rows)
	if len(got) != 2 || len(got[0].Departments) != 2 || len(got[1].Departments) != 1 {
		t.Fatalf("unexpected shape: %+v", got)
	}

	cse := got[0].Departments[0]
	if cse.DueCount != 2 {
		t.Errorf("CSE dueCount = %d, want 2", cse.DueCount)
	}
	assertDecimal(t, "CSE balance", cse.Balance, "600")

	ece := got[0].Departments[1]
	if ece.DueCount != 0 {
		t.Errorf("ECE dueCount = %d, want 0", ece.DueCount)
	}
	assertDecimal(t, "ECE balance", ece.Balance, "-100")
}

func TestSumTransactions(t *testing.T) {
	items := []*models.Transaction{
		{Amount: dec("10.25")},
		{Amount: dec("0")},
		{Amount: dec("89.75")},
	}
	assertDecimal(t, "sum", SumTransactions(items), "100")
	assertDecimal(t, "empty sum", SumTransactions(nil), "0")
}
