package idea

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteIdeaInput represents the input for deleting an idea.
type DeleteIdeaInput struct {
	ID uuid.UUID
}

// DeleteIdeaUseCase handles idea deletion logic.
type DeleteIdeaUseCase struct {
	ideas *store.Collection[entity.Idea]
}

// NewDeleteIdeaUseCase creates a new DeleteIdeaUseCase instance.
func NewDeleteIdeaUseCase(ideas *store.Collection[entity.Idea]) *DeleteIdeaUseCase {
	return &DeleteIdeaUseCase{ideas: ideas}
}

// Execute removes the idea. An unknown id is a no-op.
func (uc *DeleteIdeaUseCase) Execute(ctx context.Context, input DeleteIdeaInput) error {
	return uc.ideas.Delete(ctx, input.ID)
}
