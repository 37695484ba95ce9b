package analysis

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// DeleteAnalysisInput represents the input for deleting one analysis.
type DeleteAnalysisInput struct {
	ID uuid.UUID
}

// DeleteAnalysisUseCase handles single-analysis deletion.
type DeleteAnalysisUseCase struct {
	analyses *store.Collection[entity.GameAnalysis]
}

// NewDeleteAnalysisUseCase creates a new DeleteAnalysisUseCase instance.
func NewDeleteAnalysisUseCase(analyses *store.Collection[entity.GameAnalysis]) *DeleteAnalysisUseCase {
	return &DeleteAnalysisUseCase{analyses: analyses}
}

// Execute removes the analysis. An unknown id is a no-op.
func (uc *DeleteAnalysisUseCase) Execute(ctx context.Context, input DeleteAnalysisInput) error {
	return uc.analyses.Delete(ctx, input.ID)
}

// ClearAnalysesUseCase wipes the whole analysis collection.
type ClearAnalysesUseCase struct {
	analyses *store.Collection[entity.GameAnalysis]
}

// NewClearAnalysesUseCase creates a new ClearAnalysesUseCase instance.
func NewClearAnalysesUseCase(analyses *store.Collection[entity.GameAnalysis]) *ClearAnalysesUseCase {
	return &ClearAnalysesUseCase{analyses: analyses}
}

// Execute removes every stored analysis.
func (uc *ClearAnalysesUseCase) Execute(ctx context.Context) error {
	return uc.analyses.ReplaceAll(ctx, nil)
}
