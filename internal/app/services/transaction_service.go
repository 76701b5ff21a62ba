package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/repositories"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// TransactionService defines the interface for the collection/expense ledger
type TransactionService interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	ExpenseReport(ctx context.Context) (*models.ExpenseReport, error)
}

type transactionServiceImpl struct {
	txRepo repositories.ITransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(txRepo repositories.ITransactionRepository) TransactionService {
	return &transactionServiceImpl{txRepo: txRepo}
}

// normalizeTransaction validates a new ledger entry and clears the fields its type does not carry
func normalizeTransaction(tx *models.Transaction) error {
	if tx == nil {
		return fmt.Errorf("%w: transaction is nil", apperrors.ErrValidationFailed)
	}

	tx.Type = models.TransactionType(strings.ToLower(strings.TrimSpace(string(tx.Type))))
	if !tx.Type.Valid() {
		return fmt.Errorf("%w: type must be 'collection' or 'expense'", apperrors.ErrValidationFailed)
	}

	tx.PaymentMode = models.NormalizePaymentMode(string(tx.PaymentMode))
	if !tx.PaymentMode.Valid() {
		return fmt.Errorf("%w: paymentMode must be 'cash' or 'gpay'", apperrors.ErrValidationFailed)
	}

	if !validation.ValidAmount(tx.Amount) {
		return fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidationFailed)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}

	tx.Description = strings.TrimSpace(tx.Description)
	if tx.Description == "" {
		return fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}

	switch tx.Type {
	case models.TransactionCollection:
		if tx.YearID == nil || tx.DepartmentID == nil {
			return fmt.Errorf("%w: a collection needs a year and a department", apperrors.ErrValidationFailed)
		}
		tx.SpentBy = nil
	case models.TransactionExpense:
		tx.YearID = nil
		tx.DepartmentID = nil
		if tx.SpentBy != nil {
			spentBy := strings.TrimSpace(*tx.SpentBy)
			if spentBy == "" {
				tx.SpentBy = nil
			} else {
				tx.SpentBy = &spentBy
			}
		}
	}

	return nil
}

// Create records a collection or an expense
func (s *transactionServiceImpl) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := normalizeTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns ledger entries, newest date first
func (s *transactionServiceImpl) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return s.txRepo.List(ctx, filter)
}

// ExpenseReport lists every expense together with their sum
func (s *transactionServiceImpl) ExpenseReport(ctx context.Context) (*models.ExpenseReport, error) {
	items, err := s.txRepo.List(ctx, models.TransactionFilter{Type: models.TransactionExpense})
	if err != nil {
		return nil, err
	}
	return &models.ExpenseReport{Items: items, Total: SumTransactions(items)}, nil
}
