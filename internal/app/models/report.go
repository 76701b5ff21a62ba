package models

import "github.com/shopspring/decimal"

// DashboardSummary is the headline snapshot shown on the dashboard
type DashboardSummary struct {
	Collection decimal.Decimal `json:"collection"`
	Expense    decimal.Decimal `json:"expense"`
	Balance    decimal.Decimal `json:"balance"`
	YearStats  []YearStat      `json:"yearStats"`
	ModeStats  ModeStats       `json:"modeStats"`
}

// YearStat is the collected total for one academic year
type YearStat struct {
	Year  string          `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// ModeStats splits collections by payment mode
type ModeStats struct {
	Cash decimal.Decimal `json:"cash"`
	Gpay decimal.Decimal `json:"gpay"`
}

// ModeTotal is one grouped row of collections per payment mode
type ModeTotal struct {
	Mode  string
	Total decimal.Decimal
}

// BreakdownRow is one grouped (year, department, mode) subtotal as read from the store
type BreakdownRow struct {
	YearName string
	DeptName string
	Mode     string
	Total    decimal.Decimal
}

// BreakdownYear groups department subtotals under a year
type BreakdownYear struct {
	YearName    string                `json:"yearName"`
	Departments []BreakdownDepartment `json:"departments"`
}

// BreakdownDepartment holds collection subtotals for one department within a year
type BreakdownDepartment struct {
	DeptName string          `json:"deptName"`
	Cash     decimal.Decimal `json:"cash"`
	Gpay     decimal.Decimal `json:"gpay"`
	Total    decimal.Decimal `json:"total"`
}

// FeeStatusRow is one grouped (year, department) roster summary as read from the store
type FeeStatusRow struct {
	YearName   string
	DeptName   string
	Students   int64
	PaidCount  int64
	TotalFee   decimal.Decimal
	AmountPaid decimal.Decimal
}

// FeeStatusYear groups class fee summaries under a year
type FeeStatusYear struct {
	YearName    string                `json:"yearName"`
	Departments []FeeStatusDepartment `json:"departments"`
}

// FeeStatusDepartment summarises the fee accounts of one class
type FeeStatusDepartment struct {
	DeptName   string          `json:"deptName"`
	Students   int64           `json:"students"`
	PaidCount  int64           `json:"paidCount"`
	DueCount   int64           `json:"dueCount"`
	TotalFee   decimal.Decimal `json:"totalFee"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Balance    decimal.Decimal `json:"balance"`
}

// ExpenseReport lists expenses with their sum
type ExpenseReport struct {
	Items []*Transaction  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// DashboardFilter narrows the collection and expense totals of the dashboard.
// Per-year and per-mode statistics always cover the whole ledger.
type DashboardFilter struct {
	Year       IDFilter
	Department IDFilter
}

// TransactionFilter returns the ledger filter matching both transaction types
func (f DashboardFilter) TransactionFilter() TransactionFilter {
	return TransactionFilter{Year: f.Year, Department: f.Department}
}
