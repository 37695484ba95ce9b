package betting

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

// scriptedOracle answers CheckBetResult from a fixed script keyed by the
// bet description. Unscripted bets fail with a transport error.
type scriptedOracle struct {
	results map[string]entity.BetResult
}

func (o *scriptedOracle) IsAvailable() bool { return true }

func (o *scriptedOracle) CheckBetResult(_ context.Context, bet entity.Bet) (entity.BetResult, error) {
	result, ok := o.results[bet.Description]
	if !ok {
		return "", domainerror.NewOracleError(
			domainerror.ErrCodeOracleTransport,
			"scripted failure",
			errors.New("no result for "+bet.Description),
		)
	}
	return result, nil
}

func (o *scriptedOracle) FinancialInsights(context.Context, []entity.Transaction) (string, error) {
	return "", nil
}

func (o *scriptedOracle) BettingInsights(context.Context, []entity.Bet) (string, error) {
	return "", nil
}

func (o *scriptedOracle) UpcomingMatches(context.Context, string) ([]adapter.UpcomingMatch, error) {
	return nil, nil
}

func (o *scriptedOracle) GameAnalysis(context.Context, string) (*adapter.GameAnalysisPayload, error) {
	return nil, nil
}

func (o *scriptedOracle) ParseEvent(context.Context, string) (*adapter.ParsedEvent, error) {
	return nil, nil
}

func (o *scriptedOracle) SalesScript(context.Context, entity.Product) (string, error) {
	return "", nil
}

func newBetCollection(t *testing.T, bets ...*entity.Bet) *store.Collection[entity.Bet] {
	t.Helper()
	col := store.NewCollection[entity.Bet]("bets", &memorySnapshots{})
	for _, b := range bets {
		if err := col.Add(context.Background(), *b); err != nil {
			t.Fatalf("unexpected error seeding bets: %v", err)
		}
	}
	return col
}

func pendingBet(description string) *entity.Bet {
	return entity.NewBet(description,
		decimal.NewFromInt(100), decimal.NewFromInt(2),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "")
}

func TestSettleAllPartitionsOutcomes(t *testing.T) {
	winner := pendingBet("winner")
	loser := pendingBet("loser")
	open := pendingBet("open")
	broken := pendingBet("broken")
	settled := pendingBet("already settled")
	settled.Settle(entity.BetResultWon)

	bets := newBetCollection(t, winner, loser, open, broken, settled)
	oracle := &scriptedOracle{results: map[string]entity.BetResult{
		"winner": entity.BetResultWon,
		"loser":  entity.BetResultLost,
		"open":   entity.BetResultPending,
	}}

	uc := NewSettleAllUseCase(bets, oracle, NewCheckTracker())
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Attempted != 4 {
		t.Errorf("expected 4 attempted, got %d", out.Attempted)
	}
	if out.Updated != 2 {
		t.Errorf("expected 2 updated, got %d", out.Updated)
	}
	if out.StillPending != 1 {
		t.Errorf("expected 1 still pending, got %d", out.StillPending)
	}
	if out.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", out.Failed)
	}

	got, _ := bets.Get(winner.ID)
	if got.Result != entity.BetResultWon || !got.Profit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("winner: expected won with profit 100, got %s %s", got.Result, got.Profit)
	}
	got, _ = bets.Get(loser.ID)
	if got.Result != entity.BetResultLost || !got.Profit.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("loser: expected lost with profit -100, got %s %s", got.Result, got.Profit)
	}
	got, _ = bets.Get(open.ID)
	if got.Result != entity.BetResultPending {
		t.Errorf("open: expected still pending, got %s", got.Result)
	}
	got, _ = bets.Get(broken.ID)
	if got.Result != entity.BetResultPending {
		t.Errorf("broken: expected untouched on oracle failure, got %s", got.Result)
	}
}

func TestSettleAllWithNoPendingBets(t *testing.T) {
	settled := pendingBet("done")
	settled.Settle(entity.BetResultLost)
	bets := newBetCollection(t, settled)

	uc := NewSettleAllUseCase(bets, &scriptedOracle{}, NewCheckTracker())
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerror.ErrNoPendingBets) {
		t.Errorf("expected ErrNoPendingBets, got %v", err)
	}
}

func TestSettleAllRejectsConcurrentBatch(t *testing.T) {
	bets := newBetCollection(t, pendingBet("open"))
	tracker := NewCheckTracker()
	if !tracker.TryBeginBatch() {
		t.Fatal("failed to claim batch slot for the test")
	}

	uc := NewSettleAllUseCase(bets, &scriptedOracle{}, tracker)
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerror.ErrBatchCheckInProgress) {
		t.Errorf("expected ErrBatchCheckInProgress, got %v", err)
	}
}

func TestSettleBetLeavesPendingUntouched(t *testing.T) {
	open := pendingBet("open")
	bets := newBetCollection(t, open)
	oracle := &scriptedOracle{results: map[string]entity.BetResult{
		"open": entity.BetResultPending,
	}}

	uc := NewSettleBetUseCase(bets, oracle, NewCheckTracker())
	out, err := uc.Execute(context.Background(), SettleBetInput{ID: open.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Settled {
		t.Error("expected bet to remain unsettled")
	}
	got, _ := bets.Get(open.ID)
	if got.Result != entity.BetResultPending || !got.Profit.IsZero() {
		t.Errorf("expected pending with zero profit, got %s %s", got.Result, got.Profit)
	}
}

func TestSettleBetInFlightGuard(t *testing.T) {
	open := pendingBet("open")
	bets := newBetCollection(t, open)
	tracker := NewCheckTracker()
	if !tracker.TryBeginBet(open.ID) {
		t.Fatal("failed to claim bet slot for the test")
	}

	uc := NewSettleBetUseCase(bets, &scriptedOracle{}, tracker)
	_, err := uc.Execute(context.Background(), SettleBetInput{ID: open.ID})
	if !errors.Is(err, domainerror.ErrBetCheckInProgress) {
		t.Errorf("expected ErrBetCheckInProgress, got %v", err)
	}
}
