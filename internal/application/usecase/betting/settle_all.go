package betting

import (
	"context"
	"log/slog"
	"sync"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// SettleAllOutput reports how the batch went. Attempted counts every
// pending bet that was checked; Updated counts those the oracle resolved.
type SettleAllOutput struct {
	Attempted    int
	Updated      int
	StillPending int
	Failed       int
	Bets         []entity.Bet
}

// SettleAllUseCase checks every pending bet against the oracle in one run.
type SettleAllUseCase struct {
	bets    *store.Collection[entity.Bet]
	oracle  adapter.OracleService
	tracker *CheckTracker
}

// NewSettleAllUseCase creates a new SettleAllUseCase instance.
func NewSettleAllUseCase(
	bets *store.Collection[entity.Bet],
	oracle adapter.OracleService,
	tracker *CheckTracker,
) *SettleAllUseCase {
	return &SettleAllUseCase{
		bets:    bets,
		oracle:  oracle,
		tracker: tracker,
	}
}

// Execute fans the checks out concurrently and applies every resolved
// result with a single batch update. Oracle failures on individual bets are
// counted, not propagated, so one bad answer never blocks the rest.
func (uc *SettleAllUseCase) Execute(ctx context.Context) (*SettleAllOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"bet checks require a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	if !uc.tracker.TryBeginBatch() {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeBatchCheckInProgress,
			"a batch check is already running",
			domainerror.ErrBatchCheckInProgress,
		)
	}
	defer uc.tracker.EndBatch()

	var pending []entity.Bet
	for _, b := range uc.bets.Items() {
		if !b.IsSettled() {
			pending = append(pending, b)
		}
	}
	if len(pending) == 0 {
		return nil, domainerror.NewBetError(
			domainerror.ErrCodeNoPendingBets,
			"there are no pending bets to check",
			domainerror.ErrNoPendingBets,
		)
	}

	type checkOutcome struct {
		bet entity.Bet
		err error
	}
	outcomes := make([]checkOutcome, len(pending))

	var wg sync.WaitGroup
	for i, bet := range pending {
		wg.Add(1)
		go func(i int, bet entity.Bet) {
			defer wg.Done()
			result, err := uc.oracle.CheckBetResult(ctx, bet)
			if err != nil {
				outcomes[i] = checkOutcome{bet: bet, err: err}
				return
			}
			bet.Settle(result)
			outcomes[i] = checkOutcome{bet: bet}
		}(i, bet)
	}
	wg.Wait()

	out := &SettleAllOutput{Attempted: len(pending)}
	var settled []entity.Bet
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			out.Failed++
			slog.Warn("bet check failed",
				"bet_id", o.bet.ID,
				"error", o.err.Error())
		case o.bet.IsSettled():
			settled = append(settled, o.bet)
		default:
			out.StillPending++
		}
	}

	if len(settled) > 0 {
		if err := uc.bets.UpdateMany(ctx, settled); err != nil {
			return nil, err
		}
		out.Updated = len(settled)
	}
	out.Bets = uc.bets.Items()

	slog.Info("batch bet check finished",
		"attempted", out.Attempted,
		"updated", out.Updated,
		"still_pending", out.StillPending,
		"failed", out.Failed)
	return out, nil
}
