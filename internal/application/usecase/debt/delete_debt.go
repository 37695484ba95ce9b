package debt

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteDebtInput represents the input for deleting a debt.
type DeleteDebtInput struct {
	ID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debts *store.Collection[entity.Debt]
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debts *store.Collection[entity.Debt]) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{debts: debts}
}

// Execute removes the debt. An unknown id is a no-op.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	return uc.debts.Delete(ctx, input.ID)
}
