package betting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// UpdateBetInput represents the input for editing a bet. The whole record is
// replaced; profit is recomputed from the result.
type UpdateBetInput struct {
	ID          uuid.UUID
	Description string
	Stake       decimal.Decimal
	Odds        decimal.Decimal
	Result      entity.BetResult
	Date        time.Time
	Category    string
}

// UpdateBetOutput represents the output of editing a bet.
type UpdateBetOutput struct {
	Bet *entity.Bet
}

// UpdateBetUseCase handles bet editing logic.
type UpdateBetUseCase struct {
	bets *store.Collection[entity.Bet]
}

// NewUpdateBetUseCase creates a new UpdateBetUseCase instance.
func NewUpdateBetUseCase(bets *store.Collection[entity.Bet]) *UpdateBetUseCase {
	return &UpdateBetUseCase{bets: bets}
}

// Execute replaces the bet fields and recomputes profit.
func (uc *UpdateBetUseCase) Execute(ctx context.Context, input UpdateBetInput) (*UpdateBetOutput, error) {
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
	switch input.Result {
	case entity.BetResultWon, entity.BetResultLost, entity.BetResultPending:
	default:
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeInvalidBetResult,
			"result must be won, lost or pending",
			domainerror.ErrInvalidBetResult,
		)
	}

	bet, ok := uc.bets.Get(input.ID)
	if !ok {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeBetNotFound,
			"bet not found",
			domainerror.ErrBetNotFound,
		)
	}

	bet.Description = input.Description
	bet.Stake = input.Stake
	bet.Odds = input.Odds
	bet.Date = input.Date
	bet.Category = input.Category
	bet.Result = entity.BetResultPending
	bet.Profit = decimal.Zero
	bet.Settle(input.Result)

	if err := uc.bets.Update(ctx, bet); err != nil {
		return nil, err
	}
	return &UpdateBetOutput{Bet: &bet}, nil
}
