package analysis

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// batchGuard is the single-slot lock for analysis generation runs.
type batchGuard struct {
	mu      sync.Mutex
	running bool
}

func (g *batchGuard) tryBegin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return false
	}
	g.running = true
	return true
}

func (g *batchGuard) end() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = false
}

// MatchSelection is one match the caller wants analysed.
type MatchSelection struct {
	Match string
	Date  time.Time
}

// GenerateAnalysesInput represents the selected matches for a batch run.
type GenerateAnalysesInput struct {
	Selections []MatchSelection
}

// GenerateAnalysesOutput reports the batch outcome. Analyses that failed
// are counted; the successful ones are already stored.
type GenerateAnalysesOutput struct {
	Generated int
	Failed    int
	Analyses  []entity.GameAnalysis
}

// GenerateAnalysesUseCase produces and stores one analysis per selected
// match. Only one batch runs at a time.
type GenerateAnalysesUseCase struct {
	analyses *store.Collection[entity.GameAnalysis]
	oracle   adapter.OracleService
	cache    OracleCache
	guard    batchGuard
}

// NewGenerateAnalysesUseCase creates a new GenerateAnalysesUseCase instance.
func NewGenerateAnalysesUseCase(
	analyses *store.Collection[entity.GameAnalysis],
	oracle adapter.OracleService,
	cache OracleCache,
) *GenerateAnalysesUseCase {
	return &GenerateAnalysesUseCase{
		analyses: analyses,
		oracle:   oracle,
		cache:    cache,
	}
}

// Execute analyses the selected matches one by one. A malformed oracle
// answer skips that match and the run carries on; nothing is stored for
// failed matches.
func (uc *GenerateAnalysesUseCase) Execute(ctx context.Context, input GenerateAnalysesInput) (*GenerateAnalysesOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"analyses require a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}
	if len(input.Selections) == 0 {
		return nil, domainerror.ErrNoMatchesSelected
	}
	if !uc.guard.tryBegin() {
		return nil, domainerror.ErrAnalysisBatchInProgress
	}
	defer uc.guard.end()

	out := &GenerateAnalysesOutput{}
	for _, selection := range input.Selections {
		payload, err := uc.analyse(ctx, selection.Match)
		if err != nil {
			out.Failed++
			slog.Warn("analysis generation failed",
				"match", selection.Match,
				"error", err.Error())
			continue
		}

		analysis := entity.NewGameAnalysis(selection.Match, selection.Date, payload.Analysis)
		analysis.PotentialEntries = payload.PotentialEntries
		analysis.Referee = payload.Referee
		analysis.CardStats = payload.CardStats
		analysis.CornerScenario = payload.CornerScenario
		analysis.TeamCornerAverages = payload.TeamCornerAverages

		if err := uc.analyses.Add(ctx, *analysis); err != nil {
			return nil, err
		}
		out.Generated++
	}
	out.Analyses = uc.analyses.Items()

	slog.Info("analysis batch finished",
		"generated", out.Generated,
		"failed", out.Failed)
	return out, nil
}

func (uc *GenerateAnalysesUseCase) analyse(ctx context.Context, match string) (*adapter.GameAnalysisPayload, error) {
	if uc.cache != nil {
		if payload, ok := uc.cache.GetAnalysis(ctx, match); ok {
			return payload, nil
		}
	}
	payload, err := uc.oracle.GameAnalysis(ctx, match)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.SetAnalysis(ctx, match, payload)
	}
	return payload, nil
}
