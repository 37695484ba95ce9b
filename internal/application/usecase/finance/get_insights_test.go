package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
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

// recordingOracle captures the transactions handed to FinancialInsights.
type recordingOracle struct {
	received []entity.Transaction
}

func (o *recordingOracle) IsAvailable() bool { return true }

func (o *recordingOracle) FinancialInsights(_ context.Context, transactions []entity.Transaction) (string, error) {
	o.received = transactions
	return "comentário", nil
}

func (o *recordingOracle) BettingInsights(context.Context, []entity.Bet) (string, error) {
	return "", nil
}

func (o *recordingOracle) CheckBetResult(context.Context, entity.Bet) (entity.BetResult, error) {
	return entity.BetResultPending, nil
}

func (o *recordingOracle) UpcomingMatches(context.Context, string) ([]adapter.UpcomingMatch, error) {
	return nil, nil
}

func (o *recordingOracle) GameAnalysis(context.Context, string) (*adapter.GameAnalysisPayload, error) {
	return nil, nil
}

func (o *recordingOracle) ParseEvent(context.Context, string) (*adapter.ParsedEvent, error) {
	return nil, nil
}

func (o *recordingOracle) SalesScript(context.Context, entity.Product) (string, error) {
	return "", nil
}

func newTransactionCollection(t *testing.T, transactions ...*entity.Transaction) *store.Collection[entity.Transaction] {
	t.Helper()
	col := store.NewCollection[entity.Transaction]("transactions", &memorySnapshots{})
	for _, tx := range transactions {
		if err := col.Add(context.Background(), *tx); err != nil {
			t.Fatalf("unexpected error seeding transactions: %v", err)
		}
	}
	return col
}

func expenseOn(description string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(entity.TransactionTypeExpense,
		description, "Outros", decimal.NewFromInt(100), date)
}

func TestGetInsightsFiltersTransactionsByWindow(t *testing.T) {
	inside := expenseOn("inside", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	outside := expenseOn("outside", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	transactions := newTransactionCollection(t, inside, outside)

	oracle := &recordingOracle{}
	uc := NewGetInsightsUseCase(transactions, oracle)

	out, err := uc.Execute(context.Background(), GetInsightsInput{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Insights != "comentário" {
		t.Errorf("expected oracle commentary, got %q", out.Insights)
	}

	if len(oracle.received) != 1 {
		t.Fatalf("expected oracle to see 1 transaction, got %d", len(oracle.received))
	}
	if oracle.received[0].Description != "inside" {
		t.Errorf("expected only the in-window transaction, got %q", oracle.received[0].Description)
	}
}

func TestGetInsightsWithoutWindowSeesEverything(t *testing.T) {
	transactions := newTransactionCollection(t,
		expenseOn("old", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)),
		expenseOn("new", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	)

	oracle := &recordingOracle{}
	uc := NewGetInsightsUseCase(transactions, oracle)

	if _, err := uc.Execute(context.Background(), GetInsightsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(oracle.received) != 2 {
		t.Errorf("expected oracle to see both transactions, got %d", len(oracle.received))
	}
}

func TestGetInsightsRejectsBadWindow(t *testing.T) {
	transactions := newTransactionCollection(t)
	oracle := &recordingOracle{}
	uc := NewGetInsightsUseCase(transactions, oracle)

	_, err := uc.Execute(context.Background(), GetInsightsInput{StartDate: "10/03/2024"})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected invalid date range error, got %v", err)
	}
	if oracle.received != nil {
		t.Error("expected no oracle call for a bad window")
	}
}
