// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityKind discriminates the origin of a recent-activity item.
// It is a dedicated field so it can never collide with a source entity's
// own fields (a Transaction also has a "type").
type ActivityKind string

const (
	ActivityKindTransaction ActivityKind = "transaction"
	ActivityKindBet         ActivityKind = "bet"
)

// Activity is one row of the cross-tracker recent-activity feed.
type Activity struct {
	Kind        ActivityKind    `json:"kind"`
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	// TransactionType is set when Kind is transaction.
	TransactionType TransactionType `json:"transactionType,omitempty"`
	// BetResult is set when Kind is bet.
	BetResult BetResult `json:"betResult,omitempty"`
}
