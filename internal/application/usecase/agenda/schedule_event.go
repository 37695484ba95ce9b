// Package agenda contains calendar-event use cases.
package agenda

import (
	"context"
	"strings"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// ScheduleEventInput represents the free text to turn into an event.
type ScheduleEventInput struct {
	Text string
}

// ScheduleEventOutput represents the output of scheduling an event.
type ScheduleEventOutput struct {
	Event *entity.CalendarEvent
}

// ScheduleEventUseCase extracts an event from free text via the oracle.
type ScheduleEventUseCase struct {
	events *store.Collection[entity.CalendarEvent]
	oracle adapter.OracleService
}

// NewScheduleEventUseCase creates a new ScheduleEventUseCase instance.
func NewScheduleEventUseCase(
	events *store.Collection[entity.CalendarEvent],
	oracle adapter.OracleService,
) *ScheduleEventUseCase {
	return &ScheduleEventUseCase{
		events: events,
		oracle: oracle,
	}
}

// Execute parses the text and stores the event. Title, date and time must
// all come back from the extraction; nothing is stored otherwise.
func (uc *ScheduleEventUseCase) Execute(ctx context.Context, input ScheduleEventInput) (*ScheduleEventOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerror.ErrEventTextEmpty
	}
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"event parsing requires a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	parsed, err := uc.oracle.ParseEvent(ctx, text)
	if err != nil {
		return nil, err
	}
	if parsed.Title == "" || parsed.Date == "" || parsed.Time == "" {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"extraction is missing title, date or time",
			domainerror.ErrOracleMalformedPayload,
		)
	}

	event := entity.NewCalendarEvent(parsed.Title, parsed.Date, parsed.Time, text)
	if err := uc.events.Add(ctx, *event); err != nil {
		return nil, err
	}
	return &ScheduleEventOutput{Event: event}, nil
}
