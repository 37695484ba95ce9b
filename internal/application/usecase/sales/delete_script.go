package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteScriptInput represents the input for deleting a sales script.
type DeleteScriptInput struct {
	ID uuid.UUID
}

// DeleteScriptUseCase handles sales-script deletion logic.
type DeleteScriptUseCase struct {
	scripts *store.Collection[entity.SalesScript]
}

// NewDeleteScriptUseCase creates a new DeleteScriptUseCase instance.
func NewDeleteScriptUseCase(scripts *store.Collection[entity.SalesScript]) *DeleteScriptUseCase {
	return &DeleteScriptUseCase{scripts: scripts}
}

// Execute removes the script. An unknown id is a no-op.
func (uc *DeleteScriptUseCase) Execute(ctx context.Context, input DeleteScriptInput) error {
	return uc.scripts.Delete(ctx, input.ID)
}
