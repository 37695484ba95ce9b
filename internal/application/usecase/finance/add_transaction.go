// Package finance contains transaction-related use cases.
package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddTransactionInput represents the input for recording a transaction.
type AddTransactionInput struct {
	Type        entity.TransactionType
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
}

// AddTransactionOutput represents the output of recording a transaction.
type AddTransactionOutput struct {
	Transaction *entity.Transaction
}

// AddTransactionUseCase handles transaction creation logic.
type AddTransactionUseCase struct {
	transactions *store.Collection[entity.Transaction]
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(transactions *store.Collection[entity.Transaction]) *AddTransactionUseCase {
	return &AddTransactionUseCase{transactions: transactions}
}

// Execute records the transaction.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.ErrInvalidTransactionType
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.ErrInvalidTransactionAmount
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Description,
		input.Category,
		input.Amount,
		input.Date,
	)
	if err := uc.transactions.Add(ctx, *transaction); err != nil {
		return nil, err
	}
	return &AddTransactionOutput{Transaction: transaction}, nil
}
