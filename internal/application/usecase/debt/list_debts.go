package debt

import (
	"context"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListDebtsOutput bundles the debts with their summary.
type ListDebtsOutput struct {
	Debts   []entity.Debt
	Summary aggregate.DebtSummary
}

// ListDebtsUseCase handles debt listing logic.
type ListDebtsUseCase struct {
	debts *store.Collection[entity.Debt]
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debts *store.Collection[entity.Debt]) *ListDebtsUseCase {
	return &ListDebtsUseCase{debts: debts}
}

// Execute lists debts newest first with totals.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts := uc.debts.Items()
	return &ListDebtsOutput{
		Debts:   debts,
		Summary: aggregate.Debts(debts),
	}, nil
}
