// Package daterange implements the shared inclusive date window used by
// list endpoints and the dashboard overview.
package daterange

import (
	"fmt"
	"time"

	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
)

const dayLayout = "2006-01-02"

// Range is an optional date window. A nil bound leaves that side open.
// Start is the first instant included; End is the first instant excluded.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// New parses optional AAAA-MM-DD bounds into a Range. The start bound
// becomes midnight UTC of that day and the end bound becomes midnight UTC
// of the following day, so both named days are fully included.
func New(start, end string) (Range, error) {
	var r Range
	if start != "" {
		t, err := time.ParseInLocation(dayLayout, start, time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("%w: bad start date %q", domainerror.ErrInvalidDateRange, start)
		}
		r.Start = &t
	}
	if end != "" {
		t, err := time.ParseInLocation(dayLayout, end, time.UTC)
		if err != nil {
			return Range{}, fmt.Errorf("%w: bad end date %q", domainerror.ErrInvalidDateRange, end)
		}
		next := t.AddDate(0, 0, 1)
		r.End = &next
	}
	return r, nil
}

// IsZero reports whether the range has no bounds at all.
func (r Range) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether the instant falls inside the window.
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && !t.Before(*r.End) {
		return false
	}
	return true
}

// Filter returns the items whose date falls inside the window, preserving
// order. An unbounded range returns the input unchanged.
func Filter[T any](items []T, r Range, date func(T) time.Time) []T {
	if r.IsZero() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(date(item)) {
			out = append(out, item)
		}
	}
	return out
}
