// Package sales contains product, sale and sales-script use cases.
package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddProductInput represents the input for registering a product.
type AddProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Media       string
}

// AddProductOutput represents the output of registering a product.
type AddProductOutput struct {
	Product *entity.Product
}

// AddProductUseCase handles product creation logic.
type AddProductUseCase struct {
	products *store.Collection[entity.Product]
}

// NewAddProductUseCase creates a new AddProductUseCase instance.
func NewAddProductUseCase(products *store.Collection[entity.Product]) *AddProductUseCase {
	return &AddProductUseCase{products: products}
}

// Execute registers the product.
func (uc *AddProductUseCase) Execute(ctx context.Context, input AddProductInput) (*AddProductOutput, error) {
	if input.Price.IsNegative() {
		return nil, domainerror.ErrInvalidProductPrice
	}

	product := entity.NewProduct(input.Name, input.Description, input.Price, input.Media)
	if err := uc.products.Add(ctx, *product); err != nil {
		return nil, err
	}
	return &AddProductOutput{Product: product}, nil
}
