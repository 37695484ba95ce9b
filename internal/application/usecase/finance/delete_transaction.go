package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactions *store.Collection[entity.Transaction]
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactions *store.Collection[entity.Transaction]) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactions: transactions}
}

// Execute removes the transaction. An unknown id is a no-op.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	return uc.transactions.Delete(ctx, input.ID)
}
