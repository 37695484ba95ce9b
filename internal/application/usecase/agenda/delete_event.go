package agenda

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteEventInput represents the input for deleting an event.
type DeleteEventInput struct {
	ID uuid.UUID
}

// DeleteEventUseCase handles event deletion logic.
type DeleteEventUseCase struct {
	events *store.Collection[entity.CalendarEvent]
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(events *store.Collection[entity.CalendarEvent]) *DeleteEventUseCase {
	return &DeleteEventUseCase{events: events}
}

// Execute removes the event. An unknown id is a no-op.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, input DeleteEventInput) error {
	return uc.events.Delete(ctx, input.ID)
}
