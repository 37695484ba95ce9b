package idea

import (
	"context"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListIdeasOutput represents the stored ideas, newest first.
type ListIdeasOutput struct {
	Ideas []entity.Idea
}

// ListIdeasUseCase handles idea listing logic.
type ListIdeasUseCase struct {
	ideas *store.Collection[entity.Idea]
}

// NewListIdeasUseCase creates a new ListIdeasUseCase instance.
func NewListIdeasUseCase(ideas *store.Collection[entity.Idea]) *ListIdeasUseCase {
	return &ListIdeasUseCase{ideas: ideas}
}

// Execute lists the stored ideas.
func (uc *ListIdeasUseCase) Execute(ctx context.Context) (*ListIdeasOutput, error) {
	return &ListIdeasOutput{Ideas: uc.ideas.Items()}, nil
}
