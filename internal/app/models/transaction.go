package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry of the collection/expense ledger
type Transaction struct {
	ID           int64           `json:"id" db:"id" example:"1"`
	Type         TransactionType `json:"type" db:"type" example:"collection"`
	Amount       decimal.Decimal `json:"amount" db:"amount" example:"1000"`
	PaymentMode  PaymentMode     `json:"paymentMode" db:"payment_mode" example:"cash"`
	Date         time.Time       `json:"date" db:"date"`
	Description  string          `json:"description" db:"description" example:"Semester fee"`
	SpentBy      *string         `json:"spentBy,omitempty" db:"spent_by"`          // Expenses only
	YearID       *int64          `json:"yearId,omitempty" db:"year_id"`            // NULL for expenses
	DepartmentID *int64          `json:"departmentId,omitempty" db:"department_id"` // NULL for expenses
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`

	// Populated by list queries
	YearName       *string `json:"yearName,omitempty"`
	DepartmentName *string `json:"departmentName,omitempty"`
}

// TransactionFilter narrows ledger listings and dashboard totals
type TransactionFilter struct {
	Year       IDFilter
	Department IDFilter
	Type       TransactionType // empty means both types
}
