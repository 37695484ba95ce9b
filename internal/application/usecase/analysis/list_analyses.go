package analysis

import (
	"context"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListAnalysesOutput represents the stored analyses, newest first.
type ListAnalysesOutput struct {
	Analyses []entity.GameAnalysis
}

// ListAnalysesUseCase handles analysis listing logic.
type ListAnalysesUseCase struct {
	analyses *store.Collection[entity.GameAnalysis]
}

// NewListAnalysesUseCase creates a new ListAnalysesUseCase instance.
func NewListAnalysesUseCase(analyses *store.Collection[entity.GameAnalysis]) *ListAnalysesUseCase {
	return &ListAnalysesUseCase{analyses: analyses}
}

// Execute lists the stored analyses.
func (uc *ListAnalysesUseCase) Execute(ctx context.Context) (*ListAnalysesOutput, error) {
	return &ListAnalysesOutput{Analyses: uc.analyses.Items()}, nil
}
