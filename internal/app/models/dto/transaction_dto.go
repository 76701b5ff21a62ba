package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/helpers"
)

// CreateTransactionRequest represents a new ledger entry
type CreateTransactionRequest struct {
	Type         string           `json:"type" binding:"required,oneof=collection expense" example:"collection"`
	Amount       *decimal.Decimal `json:"amount" binding:"omitempty,gte=0" swaggertype:"number" example:"1000"`
	PaymentMode  string           `json:"paymentMode" binding:"required" example:"cash"`
	Date         string           `json:"date" binding:"required" example:"2024-06-01"`
	Description  string           `json:"description" binding:"required,notblank" example:"Semester fee"`
	SpentBy      *string          `json:"spentBy,omitempty" example:"Office"`
	YearID       *int64           `json:"yearId,omitempty" example:"1"`
	DepartmentID *int64           `json:"departmentId,omitempty" example:"2"`
}

// ToModel converts the request into a transaction; the date must be YYYY-MM-DD
func (r *CreateTransactionRequest) ToModel() (*models.Transaction, error) {
	date, err := helpers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as %s", apperrors.ErrValidationFailed, helpers.DateLayout)
	}

	tx := &models.Transaction{
		Type:         models.TransactionType(r.Type),
		PaymentMode:  models.PaymentMode(r.PaymentMode),
		Date:         date,
		Description:  r.Description,
		SpentBy:      r.SpentBy,
		YearID:       r.YearID,
		DepartmentID: r.DepartmentID,
	}
	if r.Amount != nil {
		tx.Amount = *r.Amount
	}
	return tx, nil
}

// TransactionResponse is a ledger entry as shown to clients
type TransactionResponse struct {
	ID             int64           `json:"id" example:"1"`
	Type           string          `json:"type" example:"collection"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
	PaymentMode    string          `json:"paymentMode" example:"cash"`
	Date           string          `json:"date" example:"2024-06-01"`
	Description    string          `json:"description" example:"Semester fee"`
	SpentBy        *string         `json:"spentBy,omitempty"`
	YearID         *int64          `json:"yearId,omitempty" example:"1"`
	DepartmentID   *int64          `json:"departmentId,omitempty" example:"2"`
	YearName       *string         `json:"yearName,omitempty" example:"1st Year"`
	DepartmentName *string         `json:"departmentName,omitempty" example:"CSE"`
	CreatedAt      string          `json:"createdAt" example:"2024-06-01T09:30:00Z"`
}

// NewTransactionResponse converts a ledger entry for output
func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             tx.ID,
		Type:           string(tx.Type),
		Amount:         tx.Amount,
		PaymentMode:    string(tx.PaymentMode),
		Date:           helpers.FormatDate(tx.Date),
		Description:    tx.Description,
		SpentBy:        tx.SpentBy,
		YearID:         tx.YearID,
		DepartmentID:   tx.DepartmentID,
		YearName:       tx.YearName,
		DepartmentName: tx.DepartmentName,
		CreatedAt:      helpers.FormatTimestamp(tx.CreatedAt),
	}
}

// NewTransactionResponses converts a list of ledger entries
func NewTransactionResponses(items []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(items))
	for _, tx := range items {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}

// ExpenseReportResponse lists expenses newest first with their sum
type ExpenseReportResponse struct {
	Items []TransactionResponse `json:"items"`
	Total decimal.Decimal       `json:"total" swaggertype:"number" example:"4200"`
}
