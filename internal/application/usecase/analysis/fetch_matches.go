// Package analysis contains game-analysis use cases.
package analysis

import (
	"context"
	"log/slog"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
)

// OracleCache caches oracle answers that are expensive and stable for a
// while. Implementations may be absent; a nil cache disables caching.
type OracleCache interface {
	GetMatches(ctx context.Context, date string) ([]adapter.UpcomingMatch, bool)
	SetMatches(ctx context.Context, date string, matches []adapter.UpcomingMatch)
	GetAnalysis(ctx context.Context, match string) (*adapter.GameAnalysisPayload, bool)
	SetAnalysis(ctx context.Context, match string, payload *adapter.GameAnalysisPayload)
}

// FetchMatchesInput represents the input for listing upcoming matches.
type FetchMatchesInput struct {
	Date string
}

// FetchMatchesOutput represents the output of listing upcoming matches.
type FetchMatchesOutput struct {
	Matches []adapter.UpcomingMatch
}

// FetchMatchesUseCase asks the oracle for the day's relevant fixtures.
type FetchMatchesUseCase struct {
	oracle adapter.OracleService
	cache  OracleCache
}

// NewFetchMatchesUseCase creates a new FetchMatchesUseCase instance.
func NewFetchMatchesUseCase(oracle adapter.OracleService, cache OracleCache) *FetchMatchesUseCase {
	return &FetchMatchesUseCase{
		oracle: oracle,
		cache:  cache,
	}
}

// Execute lists the fixtures for the date, serving from cache when possible.
func (uc *FetchMatchesUseCase) Execute(ctx context.Context, input FetchMatchesInput) (*FetchMatchesOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"match suggestions require a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	if uc.cache != nil {
		if matches, ok := uc.cache.GetMatches(ctx, input.Date); ok {
			slog.Debug("serving match list from cache", "date", input.Date)
			return &FetchMatchesOutput{Matches: matches}, nil
		}
	}

	matches, err := uc.oracle.UpcomingMatches(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.SetMatches(ctx, input.Date, matches)
	}
	return &FetchMatchesOutput{Matches: matches}, nil
}
