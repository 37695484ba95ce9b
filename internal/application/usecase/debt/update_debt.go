package debt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// UpdateDebtInput represents the input for editing a debt. Marking a debt
// paid forces the paid amount to the full total; overpayment on an active
// debt is deliberately tolerated.
type UpdateDebtInput struct {
	ID          uuid.UUID
	Description string
	TotalAmount decimal.Decimal
	AmountPaid  decimal.Decimal
	DueDate     time.Time
	Status      entity.DebtStatus
}

// UpdateDebtOutput represents the output of editing a debt.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles debt editing logic.
type UpdateDebtUseCase struct {
	debts *store.Collection[entity.Debt]
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debts *store.Collection[entity.Debt]) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{debts: debts}
}

// Execute replaces the debt fields. An unknown id is a silent no-op, in
// which case the returned debt is nil.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.ErrInvalidDebtAmount
	}
	if input.AmountPaid.IsNegative() {
		return nil, domainerror.ErrInvalidDebtAmount
	}
	if input.Status != entity.DebtStatusActive && input.Status != entity.DebtStatusPaid {
		return nil, domainerror.ErrInvalidDebtStatus
	}

	debt, ok := uc.debts.Get(input.ID)
	if !ok {
		return &UpdateDebtOutput{}, nil
	}

	debt.Description = input.Description
	debt.TotalAmount = input.TotalAmount
	debt.AmountPaid = input.AmountPaid
	debt.DueDate = input.DueDate
	debt.Status = entity.DebtStatusActive
	if input.Status == entity.DebtStatusPaid {
		debt.MarkPaid()
	}

	if err := uc.debts.Update(ctx, debt); err != nil {
		return nil, err
	}
	return &UpdateDebtOutput{Debt: &debt}, nil
}
