package betting

import (
	"context"
	"time"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/application/usecase/daterange"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// GetInsightsInput represents the optional date window for the commentary.
type GetInsightsInput struct {
	StartDate string
	EndDate   string
}

// GetInsightsOutput represents the output of the betting commentary.
type GetInsightsOutput struct {
	Insights string
}

// GetInsightsUseCase asks the oracle for commentary over the windowed bet
// history. The oracle only sees bets inside the window.
type GetInsightsUseCase struct {
	bets   *store.Collection[entity.Bet]
	oracle adapter.OracleService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	bets *store.Collection[entity.Bet],
	oracle adapter.OracleService,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		bets:   bets,
		oracle: oracle,
	}
}

// Execute produces the betting insights text.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"insights require a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	window, err := daterange.New(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	bets := daterange.Filter(uc.bets.Items(), window,
		func(b entity.Bet) time.Time { return b.Date })

	insights, err := uc.oracle.BettingInsights(ctx, bets)
	if err != nil {
		return nil, err
	}
	return &GetInsightsOutput{Insights: insights}, nil
}
