package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddSaleInput represents the input for recording a sale.
type AddSaleInput struct {
	ProductID uuid.UUID
	Quantity  int
	Date      time.Time
}

// AddSaleOutput represents the output of recording a sale.
type AddSaleOutput struct {
	Sale *entity.Sale
}

// AddSaleUseCase handles sale creation logic. The product must exist at
// sale time; its id and name are then snapshotted into the sale.
type AddSaleUseCase struct {
	products *store.Collection[entity.Product]
	sales    *store.Collection[entity.Sale]
}

// NewAddSaleUseCase creates a new AddSaleUseCase instance.
func NewAddSaleUseCase(
	products *store.Collection[entity.Product],
	sales *store.Collection[entity.Sale],
) *AddSaleUseCase {
	return &AddSaleUseCase{
		products: products,
		sales:    sales,
	}
}

// Execute records the sale, computing the total from the product price.
func (uc *AddSaleUseCase) Execute(ctx context.Context, input AddSaleInput) (*AddSaleOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.ErrInvalidSaleQuantity
	}

	product, ok := uc.products.Get(input.ProductID)
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
	sale := entity.NewSale(&product, input.Quantity, total, input.Date)
	if err := uc.sales.Add(ctx, *sale); err != nil {
		return nil, err
	}
	return &AddSaleOutput{Sale: sale}, nil
}
