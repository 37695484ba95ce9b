package adapter

import (
	"context"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// UpcomingMatch is one fixture suggested by the oracle for a given day.
type UpcomingMatch struct {
	Match string `json:"match"`
	Date  string `json:"date"`
}

// ParsedEvent is the structured form the oracle extracts from free text.
type ParsedEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// GameAnalysisPayload is the structured analysis the oracle produces for a
// single match. Only Analysis is mandatory.
type GameAnalysisPayload struct {
	Analysis           string `json:"analysis"`
	PotentialEntries   string `json:"potentialEntries,omitempty"`
	Referee            string `json:"referee,omitempty"`
	CardStats          string `json:"cardStats,omitempty"`
	CornerScenario     string `json:"cornerScenario,omitempty"`
	TeamCornerAverages string `json:"teamCornerAverages,omitempty"`
}

// OracleService is the boundary to the generative AI provider. Every method
// classifies failures into the oracle error taxonomy before returning.
type OracleService interface {
	// IsAvailable reports whether the service is configured with credentials.
	IsAvailable() bool

	// FinancialInsights produces a free-text commentary over transactions.
	FinancialInsights(ctx context.Context, transactions []entity.Transaction) (string, error)

	// BettingInsights produces a free-text commentary over bets.
	BettingInsights(ctx context.Context, bets []entity.Bet) (string, error)

	// CheckBetResult classifies a bet outcome as won, lost or pending.
	CheckBetResult(ctx context.Context, bet entity.Bet) (entity.BetResult, error)

	// UpcomingMatches lists relevant fixtures for the given date (2006-01-02).
	UpcomingMatches(ctx context.Context, date string) ([]UpcomingMatch, error)

	// GameAnalysis produces a structured pre-match analysis for one fixture.
	GameAnalysis(ctx context.Context, match string) (*GameAnalysisPayload, error)

	// ParseEvent extracts a calendar event from free text.
	ParseEvent(ctx context.Context, text string) (*ParsedEvent, error)

	// SalesScript writes a persuasive sales script for a product.
	SalesScript(ctx context.Context, product entity.Product) (string, error)
}
