// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddDebtInput represents the input for registering a debt.
type AddDebtInput struct {
	Description string
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	DueDate     time.Time
}

// AddDebtOutput represents the output of registering a debt.
type AddDebtOutput struct {
	Debt *entity.Debt
}

// AddDebtUseCase handles debt creation logic.
type AddDebtUseCase struct {
	debts *store.Collection[entity.Debt]
}

// NewAddDebtUseCase creates a new AddDebtUseCase instance.
func NewAddDebtUseCase(debts *store.Collection[entity.Debt]) *AddDebtUseCase {
	return &AddDebtUseCase{debts: debts}
}

// Execute registers the debt as active.
func (uc *AddDebtUseCase) Execute(ctx context.Context, input AddDebtInput) (*AddDebtOutput, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.ErrInvalidDebtAmount
	}
	if input.AmountPaid.IsNegative() {
		return nil, domainerror.ErrInvalidDebtAmount
	}

	debt := entity.NewDebt(input.Description, input.TotalAmount, input.AmountPaid, input.DueDate)
	if err := uc.debts.Add(ctx, *debt); err != nil {
		return nil, err
	}
	return &AddDebtOutput{Debt: debt}, nil
}
