package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// ReminderWorker periodically emails a digest of the day's agenda. Delivery
// failures are logged, never propagated; the next poll tries again unless
// the failure is permanent.
type ReminderWorker struct {
	events       *store.Collection[entity.CalendarEvent]
	sender       adapter.EmailSender
	to           string
	pollInterval time.Duration

	mu       sync.Mutex
	lastSent string
}

// NewReminderWorker creates a new ReminderWorker instance.
func NewReminderWorker(
	events *store.Collection[entity.CalendarEvent],
	sender adapter.EmailSender,
	to string,
	pollInterval time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		events:       events,
		sender:       sender,
		to:           to,
		pollInterval: pollInterval,
	}
}

// Start runs the poll loop until the context is cancelled. At most one
// digest is sent per day, and only on days that have events.
func (w *ReminderWorker) Start(ctx context.Context) {
	slog.Info("Reminder worker started", "poll_interval", w.pollInterval.String())
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *ReminderWorker) poll(ctx context.Context) {
	today := time.Now().Format("2006-01-02")

	w.mu.Lock()
	alreadySent := w.lastSent == today
	w.mu.Unlock()
	if alreadySent {
		return
	}

	var todays []entity.CalendarEvent
	for _, e := range w.events.Items() {
		if e.Date == today {
			todays = append(todays, e)
		}
	}
	if len(todays) == 0 {
		return
	}

	if err := w.sendDigest(ctx, today, todays); err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure {
			slog.Error("reminder digest failed permanently, skipping today",
				"date", today,
				"error", err.Error())
			w.markSent(today)
			return
		}
		slog.Warn("reminder digest failed, will retry next poll",
			"date", today,
			"error", err.Error())
		return
	}
	w.markSent(today)
}

func (w *ReminderWorker) markSent(day string) {
	w.mu.Lock()
	w.lastSent = day
	w.mu.Unlock()
}

func (w *ReminderWorker) sendDigest(ctx context.Context, day string, events []entity.CalendarEvent) error {
	var html strings.Builder
	var text strings.Builder
	html.WriteString("<h2>Compromissos de hoje</h2><ul>")
	for _, e := range events {
		html.WriteString(fmt.Sprintf("<li><strong>%s</strong> - %s</li>", e.Time, e.Title))
		text.WriteString(fmt.Sprintf("%s - %s\n", e.Time, e.Title))
	}
	html.WriteString("</ul>")

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      w.to,
		Subject: fmt.Sprintf("Agenda de %s", day),
		HTML:    html.String(),
		Text:    text.String(),
	})
	if err != nil {
		return err
	}

	slog.Info("reminder digest sent",
		"date", day,
		"events", len(events),
		"provider_id", result.ProviderID)
	return nil
}
