package sales

import (
	"context"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListProductsOutput represents the stored products, newest first.
type ListProductsOutput struct {
	Products []entity.Product
}

// ListProductsUseCase handles product listing logic.
type ListProductsUseCase struct {
	products *store.Collection[entity.Product]
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(products *store.Collection[entity.Product]) *ListProductsUseCase {
	return &ListProductsUseCase{products: products}
}

// Execute lists the stored products.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	return &ListProductsOutput{Products: uc.products.Items()}, nil
}

// ListSalesOutput represents the stored sales, newest first.
type ListSalesOutput struct {
	Sales []entity.Sale
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	sales *store.Collection[entity.Sale]
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(sales *store.Collection[entity.Sale]) *ListSalesUseCase {
	return &ListSalesUseCase{sales: sales}
}

// Execute lists the stored sales.
func (uc *ListSalesUseCase) Execute(ctx context.Context) (*ListSalesOutput, error) {
	return &ListSalesOutput{Sales: uc.sales.Items()}, nil
}

// ListScriptsOutput represents the stored sales scripts, newest first.
type ListScriptsOutput struct {
	Scripts []entity.SalesScript
}

// ListScriptsUseCase handles sales-script listing logic.
type ListScriptsUseCase struct {
	scripts *store.Collection[entity.SalesScript]
}

// NewListScriptsUseCase creates a new ListScriptsUseCase instance.
func NewListScriptsUseCase(scripts *store.Collection[entity.SalesScript]) *ListScriptsUseCase {
	return &ListScriptsUseCase{scripts: scripts}
}

// Execute lists the stored scripts.
func (uc *ListScriptsUseCase) Execute(ctx context.Context) (*ListScriptsOutput, error) {
	return &ListScriptsOutput{Scripts: uc.scripts.Items()}, nil
}
