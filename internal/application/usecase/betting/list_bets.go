package betting

import (
	"context"
	"time"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/daterange"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListBetsInput represents the optional date window for listing.
type ListBetsInput struct {
	StartDate string
	EndDate   string
}

// ListBetsOutput bundles the filtered bets with the aggregates computed
// over the same window.
type ListBetsOutput struct {
	Bets            []entity.Bet
	Summary         aggregate.BettingSummary
	ProfitEvolution []aggregate.ProfitPoint
}

// ListBetsUseCase handles bet listing logic.
type ListBetsUseCase struct {
	bets *store.Collection[entity.Bet]
}

// NewListBetsUseCase creates a new ListBetsUseCase instance.
func NewListBetsUseCase(bets *store.Collection[entity.Bet]) *ListBetsUseCase {
	return &ListBetsUseCase{bets: bets}
}

// Execute lists bets newest first, filtered by the optional window.
func (uc *ListBetsUseCase) Execute(ctx context.Context, input ListBetsInput) (*ListBetsOutput, error) {
	window, err := daterange.New(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	bets := daterange.Filter(uc.bets.Items(), window,
		func(b entity.Bet) time.Time { return b.Date })

	return &ListBetsOutput{
		Bets:            bets,
		Summary:         aggregate.Summary(bets),
		ProfitEvolution: aggregate.ProfitEvolution(bets),
	}, nil
}
