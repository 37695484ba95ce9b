// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// CalendarEvent represents an agenda entry extracted by the oracle from
// free text. Date (AAAA-MM-DD) and Time (HH:MM) come straight from the
// extraction and are only checked for presence, not validity.
type CalendarEvent struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	FullText string    `json:"fullText"`
}

// NewCalendarEvent creates a new CalendarEvent entity with a fresh identifier.
func NewCalendarEvent(title, date, eventTime, fullText string) *CalendarEvent {
	return &CalendarEvent{
		ID:       uuid.New(),
		Title:    title,
		Date:     date,
		Time:     eventTime,
		FullText: fullText,
	}
}

// RecordID returns the event identifier.
func (e CalendarEvent) RecordID() uuid.UUID { return e.ID }
