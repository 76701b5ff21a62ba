package models

import "github.com/shopspring/decimal"

// Student is a roster entry together with its fee account
type Student struct {
	ID           int64           `json:"id" db:"id" example:"1"`
	Name         string          `json:"name" db:"name" example:"Anu Joseph"`
	YearID       int64           `json:"yearId" db:"year_id" example:"1"`
	DepartmentID int64           `json:"departmentId" db:"department_id" example:"2"`
	IsPaid       bool            `json:"isPaid" db:"is_paid" example:"false"`
	TotalFee     decimal.Decimal `json:"totalFee" db:"total_fee" example:"25000"`
	AmountPaid   decimal.Decimal `json:"amountPaid" db:"amount_paid" example:"10000"`
}

// Balance is the amount the student still owes; negative when overpaid
func (s *Student) Balance() decimal.Decimal {
	return s.TotalFee.Sub(s.AmountPaid)
}

// IsFeeSettled reports whether nothing is left to pay. A zero balance counts as paid.
func IsFeeSettled(totalFee, amountPaid decimal.Decimal) bool {
	return totalFee.Sub(amountPaid).LessThanOrEqual(decimal.Zero)
}

// StudentFilter narrows roster listings and bulk fee updates
type StudentFilter struct {
	Year       IDFilter
	Department IDFilter
}
