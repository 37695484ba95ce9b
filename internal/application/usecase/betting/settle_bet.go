package betting

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// SettleBetInput represents the input for checking one bet's result.
type SettleBetInput struct {
	ID uuid.UUID
}

// SettleBetOutput represents the outcome of the check. Settled is false when
// the oracle answered pending and the bet was left untouched.
type SettleBetOutput struct {
	Bet     *entity.Bet
	Settled bool
}

// SettleBetUseCase asks the oracle for a bet result and applies it.
type SettleBetUseCase struct {
	bets    *store.Collection[entity.Bet]
	oracle  adapter.OracleService
	tracker *CheckTracker
}

// NewSettleBetUseCase creates a new SettleBetUseCase instance.
func NewSettleBetUseCase(
	bets *store.Collection[entity.Bet],
	oracle adapter.OracleService,
	tracker *CheckTracker,
) *SettleBetUseCase {
	return &SettleBetUseCase{
		bets:    bets,
		oracle:  oracle,
		tracker: tracker,
	}
}

// Execute checks the bet with the oracle. Nothing is persisted unless the
// oracle resolves a final result.
func (uc *SettleBetUseCase) Execute(ctx context.Context, input SettleBetInput) (*SettleBetOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"bet checks require a configured AI service",
			domainerror.ErrOracleUnavailable,
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
	if bet.IsSettled() {
		return &SettleBetOutput{Bet: &bet, Settled: true}, nil
	}

	if !uc.tracker.TryBeginBet(bet.ID) {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeBetCheckInProgress,
			"a check for this bet is already running",
			domainerror.ErrBetCheckInProgress,
		)
	}
	defer uc.tracker.EndBet(bet.ID)

	result, err := uc.oracle.CheckBetResult(ctx, bet)
	if err != nil {
		return nil, err
	}
	if result != entity.BetResultWon && result != entity.BetResultLost {
		slog.Info("bet still unresolved", "bet_id", bet.ID)
		return &SettleBetOutput{Bet: &bet, Settled: false}, nil
	}

	bet.Settle(result)
	if err := uc.bets.Update(ctx, bet); err != nil {
		return nil, err
	}

	slog.Info("bet settled",
		"bet_id", bet.ID,
		"result", string(bet.Result),
		"profit", bet.Profit.String())
	return &SettleBetOutput{Bet: &bet, Settled: true}, nil
}
