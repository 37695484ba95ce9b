package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteSaleInput represents the input for deleting a sale.
type DeleteSaleInput struct {
	ID uuid.UUID
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	sales *store.Collection[entity.Sale]
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(sales *store.Collection[entity.Sale]) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{sales: sales}
}

// Execute removes the sale. An unknown id is a no-op.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	return uc.sales.Delete(ctx, input.ID)
}
