package betting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
)

// insightsOracle records the bets handed to BettingInsights.
type insightsOracle struct {
	*scriptedOracle
	received []entity.Bet
}

func (o *insightsOracle) BettingInsights(_ context.Context, bets []entity.Bet) (string, error) {
	o.received = bets
	return "comentário", nil
}

func datedBet(description string, date time.Time) *entity.Bet {
	return entity.NewBet(description,
		decimal.NewFromInt(100), decimal.NewFromInt(2), date, "")
}

func TestGetInsightsFiltersBetsByWindow(t *testing.T) {
	inside := datedBet("inside", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	outside := datedBet("outside", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	bets := newBetCollection(t, inside, outside)

	oracle := &insightsOracle{scriptedOracle: &scriptedOracle{}}
	uc := NewGetInsightsUseCase(bets, oracle)

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
		t.Fatalf("expected oracle to see 1 bet, got %d", len(oracle.received))
	}
	if oracle.received[0].Description != "inside" {
		t.Errorf("expected only the in-window bet, got %q", oracle.received[0].Description)
	}
}

func TestGetInsightsWithoutWindowSeesEverything(t *testing.T) {
	bets := newBetCollection(t,
		datedBet("old", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)),
		datedBet("new", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	)

	oracle := &insightsOracle{scriptedOracle: &scriptedOracle{}}
	uc := NewGetInsightsUseCase(bets, oracle)

	if _, err := uc.Execute(context.Background(), GetInsightsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(oracle.received) != 2 {
		t.Errorf("expected oracle to see both bets, got %d", len(oracle.received))
	}
}

func TestGetInsightsRejectsBadWindow(t *testing.T) {
	bets := newBetCollection(t)
	oracle := &insightsOracle{scriptedOracle: &scriptedOracle{}}
	uc := NewGetInsightsUseCase(bets, oracle)

	_, err := uc.Execute(context.Background(), GetInsightsInput{StartDate: "10/03/2024"})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected invalid date range error, got %v", err)
	}
	if oracle.received != nil {
		t.Error("expected no oracle call for a bad window")
	}
}
