// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetResult represents the settlement state of a bet.
type BetResult string

const (
	BetResultWon     BetResult = "won"
	BetResultLost    BetResult = "lost"
	BetResultPending BetResult = "pending"
)

// Bet represents a sports bet.
// Profit is zero while pending, stake*odds-stake when won and -stake when lost.
type Bet struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Stake       decimal.Decimal `json:"stake"`
	Odds        decimal.Decimal `json:"odds"`
	Result      BetResult       `json:"result"`
	Profit      decimal.Decimal `json:"profit"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
}

// NewBet creates a new pending Bet entity with a fresh identifier.
func NewBet(description string, stake, odds decimal.Decimal, date time.Time, category string) *Bet {
	return &Bet{
		ID:          uuid.New(),
		Description: description,
		Stake:       stake,
		Odds:        odds,
		Result:      BetResultPending,
		Profit:      decimal.Zero,
		Date:        date,
		Category:    category,
	}
}

// RecordID returns the bet identifier.
func (b Bet) RecordID() uuid.UUID { return b.ID }

// IsSettled reports whether the bet has a final result.
func (b *Bet) IsSettled() bool {
	return b.Result == BetResultWon || b.Result == BetResultLost
}

// Settle applies a final result and the profit it implies.
// A pending result leaves the bet untouched.
func (b *Bet) Settle(result BetResult) {
	switch result {
	case BetResultWon:
		b.Result = BetResultWon
		b.Profit = b.Stake.Mul(b.Odds).Sub(b.Stake)
	case BetResultLost:
		b.Result = BetResultLost
		b.Profit = b.Stake.Neg()
	}
}
