package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteProductInput represents the input for deleting a product.
type DeleteProductInput struct {
	ID uuid.UUID
}

// DeleteProductUseCase handles product deletion. Sales and scripts keep
// their own snapshot of the product, so nothing cascades.
type DeleteProductUseCase struct {
	products *store.Collection[entity.Product]
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(products *store.Collection[entity.Product]) *DeleteProductUseCase {
	return &DeleteProductUseCase{products: products}
}

// Execute removes the product. An unknown id is a no-op.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	return uc.products.Delete(ctx, input.ID)
}
