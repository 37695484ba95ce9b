// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus represents whether a debt is still being paid off.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "active"
	DebtStatusPaid   DebtStatus = "paid"
)

// Debt represents money owed to a third party.
// AmountPaid is not constrained to TotalAmount; overpayment is tolerated.
type Debt struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	DueDate     time.Time       `json:"dueDate"`
	Status      DebtStatus      `json:"status"`
}

// NewDebt creates a new active Debt entity with a fresh identifier.
func NewDebt(description string, totalAmount, amountPaid decimal.Decimal, dueDate time.Time) *Debt {
	return &Debt{
		ID:          uuid.New(),
		Description: description,
		TotalAmount: totalAmount,
		AmountPaid:  amountPaid,
		DueDate:     dueDate,
		Status:      DebtStatusActive,
	}
}

// RecordID returns the debt identifier.
func (d Debt) RecordID() uuid.UUID { return d.ID }

// MarkPaid closes the debt, forcing the paid amount to the full total.
func (d *Debt) MarkPaid() {
	d.Status = DebtStatusPaid
	d.AmountPaid = d.TotalAmount
}

// Remaining returns how much is still owed.
func (d *Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.AmountPaid)
}
