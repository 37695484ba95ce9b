//go:build integration

package integration

import (
	"context"
	"fmt"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// stubOracle is a scripted oracle for feature tests. Scenarios adjust its
// answers through dedicated Given steps.
type stubOracle struct {
	available bool
	betResult entity.BetResult
	event     *adapter.ParsedEvent
	matches   []adapter.UpcomingMatch
	analysis  adapter.GameAnalysisPayload
	insights  string
	script    string
}

func newStubOracle() *stubOracle {
	return &stubOracle{
		available: true,
		betResult: entity.BetResultPending,
		event: &adapter.ParsedEvent{
			Title: "Compromisso",
			Date:  "2024-01-01",
			Time:  "09:00",
		},
		matches:  []adapter.UpcomingMatch{{Match: "Flamengo x Palmeiras", Date: "2024-01-01"}},
		analysis: adapter.GameAnalysisPayload{Analysis: "Jogo equilibrado."},
		insights: "Tudo sob controle.",
		script:   "Compre agora.",
	}
}

func (o *stubOracle) setBetResult(result string) error {
	switch result {
	case "won", "lost", "pending":
		o.betResult = entity.BetResult(result)
		return nil
	default:
		return fmt.Errorf("unknown bet result %q", result)
	}
}

func (o *stubOracle) setParsedEvent(title, date, timeOfDay string) {
	o.event = &adapter.ParsedEvent{Title: title, Date: date, Time: timeOfDay}
}

func (o *stubOracle) IsAvailable() bool { return o.available }

func (o *stubOracle) FinancialInsights(ctx context.Context, transactions []entity.Transaction) (string, error) {
	return o.insights, nil
}

func (o *stubOracle) BettingInsights(ctx context.Context, bets []entity.Bet) (string, error) {
	return o.insights, nil
}

func (o *stubOracle) CheckBetResult(ctx context.Context, bet entity.Bet) (entity.BetResult, error) {
	return o.betResult, nil
}

func (o *stubOracle) UpcomingMatches(ctx context.Context, date string) ([]adapter.UpcomingMatch, error) {
	return o.matches, nil
}

func (o *stubOracle) GameAnalysis(ctx context.Context, match string) (*adapter.GameAnalysisPayload, error) {
	payload := o.analysis
	return &payload, nil
}

func (o *stubOracle) ParseEvent(ctx context.Context, text string) (*adapter.ParsedEvent, error) {
	event := *o.event
	return &event, nil
}

func (o *stubOracle) SalesScript(ctx context.Context, product entity.Product) (string, error) {
	return o.script, nil
}

var _ adapter.OracleService = (*stubOracle)(nil)
