// Package idea contains idea-tracking use cases.
package idea

import (
	"context"
	"strings"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddIdeaInput represents the input for capturing an idea.
type AddIdeaInput struct {
	Title       string
	Description string
	Category    entity.IdeaCategory
}

// AddIdeaOutput represents the output of capturing an idea.
type AddIdeaOutput struct {
	Idea *entity.Idea
}

// AddIdeaUseCase handles idea creation logic.
type AddIdeaUseCase struct {
	ideas *store.Collection[entity.Idea]
}

// NewAddIdeaUseCase creates a new AddIdeaUseCase instance.
func NewAddIdeaUseCase(ideas *store.Collection[entity.Idea]) *AddIdeaUseCase {
	return &AddIdeaUseCase{ideas: ideas}
}

// Execute captures the idea, stamping it with the current time.
func (uc *AddIdeaUseCase) Execute(ctx context.Context, input AddIdeaInput) (*AddIdeaOutput, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.ErrMissingIdeaFields
	}
	if !entity.ValidIdeaCategory(input.Category) {
		return nil, domainerror.ErrInvalidIdeaCategory
	}

	idea := entity.NewIdea(input.Title, input.Description, input.Category)
	if err := uc.ideas.Add(ctx, *idea); err != nil {
		return nil, err
	}
	return &AddIdeaOutput{Idea: idea}, nil
}
