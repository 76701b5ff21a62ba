package services

import (
	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
)

// FoldModeStats keeps the cash and gpay totals and drops every other mode
func FoldModeStats(rows []models.ModeTotal) models.ModeStats {
	stats := models.ModeStats{Cash: decimal.Zero, Gpay: decimal.Zero}
	for _, row := range rows {
		switch models.NormalizePaymentMode(row.Mode) {
		case models.PaymentCash:
			stats.Cash = stats.Cash.Add(row.Total)
		case models.PaymentGpay:
			stats.Gpay = stats.Gpay.Add(row.Total)
		}
	}
	return stats
}

// BuildBreakdown folds (year, department, mode) subtotals into a year -> department tree
// in one pass. Years and departments keep the order in which they first appear; a mode
// other than cash or gpay only contributes to the department total.
func BuildBreakdown(rows []models.BreakdownRow) []models.BreakdownYear {
	years := []models.BreakdownYear{}
	yearIndex := make(map[string]int)
	deptIndex := make(map[string]map[string]int)

	for _, row := range rows {
		yi, ok := yearIndex[row.YearName]
		if !ok {
			yi = len(years)
			yearIndex[row.YearName] = yi
			deptIndex[row.YearName] = make(map[string]int)
			years = append(years, models.BreakdownYear{
				YearName:    row.YearName,
				Departments: []models.BreakdownDepartment{},
			})
		}

		year := &years[yi]
		di, ok := deptIndex[row.YearName][row.DeptName]
		if !ok {
			di = len(year.Departments)
			deptIndex[row.YearName][row.DeptName] = di
			year.Departments = append(year.Departments, models.BreakdownDepartment{
				DeptName: row.DeptName,
				Cash:     decimal.Zero,
				Gpay:     decimal.Zero,
				Total:    decimal.Zero,
			})
		}

		dept := &year.Departments[di]
		switch models.NormalizePaymentMode(row.Mode) {
		case models.PaymentCash:
			dept.Cash = dept.Cash.Add(row.Total)
		case models.PaymentGpay:
			dept.Gpay = dept.Gpay.Add(row.Total)
		}
		dept.Total = dept.Total.Add(row.Total)
	}

	return years
}

// BreakdownGrandTotal sums the department totals of a breakdown tree
func BreakdownGrandTotal(years []models.BreakdownYear) decimal.Decimal {
	total := decimal.Zero
	for _, y := range years {
		for _, d := range y.Departments {
			total = total.Add(d.Total)
		}
	}
	return total
}

// BuildFeeStatus folds per-class roster summaries into a year -> department tree
func BuildFeeStatus(rows []models.FeeStatusRow) []models.FeeStatusYear {
	years := []models.FeeStatusYear{}
	yearIndex := make(map[string]int)

	for _, row := range rows {
		yi, ok := yearIndex[row.YearName]
		if !ok {
			yi = len(years)
			yearIndex[row.YearName] = yi
			years = append(years, models.FeeStatusYear{
				YearName:    row.YearName,
				Departments: []models.FeeStatusDepartment{},
			})
		}

		// Rows are already grouped per (year, department), so each department appears once.
		years[yi].Departments = append(years[yi].Departments, models.FeeStatusDepartment{
			DeptName:   row.DeptName,
			Students:   row.Students,
			PaidCount:  row.PaidCount,
			DueCount:   row.Students - row.PaidCount,
			TotalFee:   row.TotalFee,
			AmountPaid: row.AmountPaid,
			Balance:    row.TotalFee.Sub(row.AmountPaid),
		})
	}

	return years
}

// SumTransactions adds up the amounts of the given ledger entries
func SumTransactions(items []*models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range items {
		total = total.Add(t.Amount)
	}
	return total
}
