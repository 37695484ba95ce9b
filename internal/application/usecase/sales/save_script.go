package sales

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// SaveScriptInput represents the input for persisting a sales script.
type SaveScriptInput struct {
	ProductID uuid.UUID
	Script    string
}

// SaveScriptOutput represents the output of persisting a sales script.
type SaveScriptOutput struct {
	Script *entity.SalesScript
}

// SaveScriptUseCase stores a script with a snapshot of its product.
type SaveScriptUseCase struct {
	products *store.Collection[entity.Product]
	scripts  *store.Collection[entity.SalesScript]
}

// NewSaveScriptUseCase creates a new SaveScriptUseCase instance.
func NewSaveScriptUseCase(
	products *store.Collection[entity.Product],
	scripts *store.Collection[entity.SalesScript],
) *SaveScriptUseCase {
	return &SaveScriptUseCase{
		products: products,
		scripts:  scripts,
	}
}

// Execute stores the script.
func (uc *SaveScriptUseCase) Execute(ctx context.Context, input SaveScriptInput) (*SaveScriptOutput, error) {
	if strings.TrimSpace(input.Script) == "" {
		return nil, domainerror.ErrEmptyScript
	}

	product, ok := uc.products.Get(input.ProductID)
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}

	script := entity.NewSalesScript(&product, input.Script)
	if err := uc.scripts.Add(ctx, *script); err != nil {
		return nil, err
	}
	return &SaveScriptOutput{Script: script}, nil
}
