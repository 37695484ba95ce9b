package agenda

import (
	"context"
	"sort"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListEventsOutput represents the agenda sorted soonest first.
type ListEventsOutput struct {
	Events []entity.CalendarEvent
}

// ListEventsUseCase handles event listing logic.
type ListEventsUseCase struct {
	events *store.Collection[entity.CalendarEvent]
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(events *store.Collection[entity.CalendarEvent]) *ListEventsUseCase {
	return &ListEventsUseCase{events: events}
}

// Execute lists events ordered by date then time. The fields are AAAA-MM-DD
// and HH:MM strings, so plain string comparison sorts chronologically.
func (uc *ListEventsUseCase) Execute(ctx context.Context) (*ListEventsOutput, error) {
	events := uc.events.Items()
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return &ListEventsOutput{Events: events}, nil
}
