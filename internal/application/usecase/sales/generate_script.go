package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// GenerateScriptInput represents the product to pitch.
type GenerateScriptInput struct {
	ProductID uuid.UUID
}

// GenerateScriptOutput carries the generated text. It is not stored until
// the caller saves it explicitly.
type GenerateScriptOutput struct {
	Script string
}

// GenerateScriptUseCase asks the oracle for a sales script.
type GenerateScriptUseCase struct {
	products *store.Collection[entity.Product]
	oracle   adapter.OracleService
}

// NewGenerateScriptUseCase creates a new GenerateScriptUseCase instance.
func NewGenerateScriptUseCase(
	products *store.Collection[entity.Product],
	oracle adapter.OracleService,
) *GenerateScriptUseCase {
	return &GenerateScriptUseCase{
		products: products,
		oracle:   oracle,
	}
}

// Execute generates a script for the product.
func (uc *GenerateScriptUseCase) Execute(ctx context.Context, input GenerateScriptInput) (*GenerateScriptOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"script generation requires a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	product, ok := uc.products.Get(input.ProductID)
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}

	script, err := uc.oracle.SalesScript(ctx, product)
	if err != nil {
		return nil, err
	}
	return &GenerateScriptOutput{Script: script}, nil
}
