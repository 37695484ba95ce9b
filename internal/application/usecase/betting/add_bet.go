package betting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// AddBetInput represents the input for registering a bet.
type AddBetInput struct {
	Description string
	Stake       decimal.Decimal
	Odds        decimal.Decimal
	Date        time.Time
	Category    string
}

// AddBetOutput represents the output of registering a bet.
type AddBetOutput struct {
	Bet *entity.Bet
}

// AddBetUseCase handles bet creation logic.
type AddBetUseCase struct {
	bets *store.Collection[entity.Bet]
}

// NewAddBetUseCase creates a new AddBetUseCase instance.
func NewAddBetUseCase(bets *store.Collection[entity.Bet]) *AddBetUseCase {
	return &AddBetUseCase{bets: bets}
}

// Execute registers the bet as pending.
func (uc *AddBetUseCase) Execute(ctx context.Context, input AddBetInput) (*AddBetOutput, error) {
	if !input.Stake.IsPositive() {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeInvalidStake,
			"stake must be greater than zero",
			domainerror.ErrInvalidStake,
		)
	}
	if input.Odds.LessThan(decimal.NewFromInt(1)) {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeInvalidOdds,
			"odds must be at least 1",
			domainerror.ErrInvalidOdds,
		)
	}

	bet := entity.NewBet(input.Description, input.Stake, input.Odds, input.Date, input.Category)
	if err := uc.bets.Add(ctx, *bet); err != nil {
		return nil, err
	}
	return &AddBetOutput{Bet: bet}, nil
}
