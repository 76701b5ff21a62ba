package models

import (
	"strconv"
	"strings"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionCollection TransactionType = "collection"
	TransactionExpense    TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	return t == TransactionCollection || t == TransactionExpense
}

// PaymentMode is the channel a transaction was paid through
type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentGpay PaymentMode = "gpay"
)

// NormalizePaymentMode lower-cases and trims a stored or submitted mode
func NormalizePaymentMode(raw string) PaymentMode {
	return PaymentMode(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether m is cash or gpay
func (m PaymentMode) Valid() bool {
	return m == PaymentCash || m == PaymentGpay
}

// FilterAll is the sentinel clients send to mean "no filter"
const FilterAll = "all"

// IDFilter is an optional equality constraint on an id column.
// The zero value means no constraint.
type IDFilter struct {
	ID      int64
	Present bool
	// Invalid is set when a value was supplied but is not an id; such a filter matches nothing.
	Invalid bool
}

// IDEquals returns a filter constraining a column to id
func IDEquals(id int64) IDFilter {
	return IDFilter{ID: id, Present: true}
}

// ParseIDFilter builds a filter from a raw request value
func ParseIDFilter(raw string) IDFilter {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, FilterAll) {
		return IDFilter{}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return IDFilter{Present: true, Invalid: true}
	}
	return IDEquals(id)
}

// Matches reports whether a nullable id column value satisfies the filter
func (f IDFilter) Matches(id *int64) bool {
	if !f.Present {
		return true
	}
	if f.Invalid || id == nil {
		return false
	}
	return *id == f.ID
}
