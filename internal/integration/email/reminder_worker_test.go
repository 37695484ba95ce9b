package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

type memorySnapshots struct {
	slots map[string][]byte
}

func (m *memorySnapshots) Load(_ context.Context, key string) ([]byte, error) {
	return m.slots[key], nil
}

func (m *memorySnapshots) Save(_ context.Context, key string, data []byte) error {
	if m.slots == nil {
		m.slots = make(map[string][]byte)
	}
	m.slots[key] = data
	return nil
}

func seedEvents(t *testing.T, events ...*entity.CalendarEvent) *store.Collection[entity.CalendarEvent] {
	t.Helper()
	col := store.NewCollection[entity.CalendarEvent]("events", &memorySnapshots{})
	for _, e := range events {
		if err := col.Add(context.Background(), *e); err != nil {
			t.Fatalf("unexpected error seeding events: %v", err)
		}
	}
	return col
}

func TestPollSendsDigestOnceForTodaysEvents(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	events := seedEvents(t,
		entity.NewCalendarEvent("Dentista", today, "14:30", ""),
		entity.NewCalendarEvent("Reunião", today, "09:00", ""),
		entity.NewCalendarEvent("Outro dia", "2099-01-01", "10:00", ""),
	)
	sender := NewMockEmailSender()
	worker := NewReminderWorker(events, sender, "me@example.com", time.Hour)

	worker.poll(context.Background())
	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 digest, got %d", len(sender.SentEmails))
	}

	sent := sender.SentEmails[0]
	if sent.To != "me@example.com" {
		t.Errorf("unexpected recipient %q", sent.To)
	}
	if !strings.Contains(sent.HTML, "Dentista") || !strings.Contains(sent.HTML, "Reunião") {
		t.Errorf("expected both events in digest, got %q", sent.HTML)
	}
	if strings.Contains(sent.HTML, "Outro dia") {
		t.Errorf("expected future event excluded, got %q", sent.HTML)
	}

	// Second poll the same day is a no-op.
	worker.poll(context.Background())
	if len(sender.SentEmails) != 1 {
		t.Errorf("expected no second digest, got %d", len(sender.SentEmails))
	}
}

func TestPollSkipsDaysWithoutEvents(t *testing.T) {
	events := seedEvents(t, entity.NewCalendarEvent("Futuro", "2099-01-01", "10:00", ""))
	sender := NewMockEmailSender()
	worker := NewReminderWorker(events, sender, "me@example.com", time.Hour)

	worker.poll(context.Background())
	if len(sender.SentEmails) != 0 {
		t.Errorf("expected no digest, got %d", len(sender.SentEmails))
	}
}

func TestPollRetriesAfterTemporaryFailure(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	events := seedEvents(t, entity.NewCalendarEvent("Dentista", today, "14:30", ""))
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("rate limited"), false)
	worker := NewReminderWorker(events, sender, "me@example.com", time.Hour)

	worker.poll(context.Background())
	if len(sender.SentEmails) != 0 {
		t.Fatalf("expected failed send, got %d emails", len(sender.SentEmails))
	}

	sender.Reset()
	worker.poll(context.Background())
	if len(sender.SentEmails) != 1 {
		t.Errorf("expected retry to send the digest, got %d", len(sender.SentEmails))
	}
}

func TestPollGivesUpAfterPermanentFailure(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	events := seedEvents(t, entity.NewCalendarEvent("Dentista", today, "14:30", ""))
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("401 unauthorized"), true)
	worker := NewReminderWorker(events, sender, "me@example.com", time.Hour)

	worker.poll(context.Background())
	sender.Reset()
	worker.poll(context.Background())
	if len(sender.SentEmails) != 0 {
		t.Errorf("expected no retry after permanent failure, got %d", len(sender.SentEmails))
	}
}
