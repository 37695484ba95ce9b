package dto

import "github.com/personal-dashboard/backend/internal/domain/entity"

// ScheduleEventRequest represents the free text to turn into an event.
type ScheduleEventRequest struct {
	Text string `json:"text" binding:"required"`
}

// EventListResponse represents the response for listing agenda events.
type EventListResponse struct {
	Events []entity.CalendarEvent `json:"events"`
}
