// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DefaultExpenseCategory is the bucket used when an expense carries no category.
const DefaultExpenseCategory = "Outros"

// Transaction represents a financial transaction.
// Amount is always non-negative; the sign is implied by Type.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// NewTransaction creates a new Transaction entity with a fresh identifier.
func NewTransaction(
	transactionType TransactionType,
	description string,
	category string,
	amount decimal.Decimal,
	date time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Description: description,
		Category:    category,
		Amount:      amount,
		Date:        date,
	}
}

// RecordID returns the transaction identifier.
func (t Transaction) RecordID() uuid.UUID { return t.ID }
