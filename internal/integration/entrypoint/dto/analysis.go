package dto

import (
	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/application/usecase/analysis"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// GenerateAnalysesRequest represents the selected matches for a batch run.
// Each date is AAAA-MM-DD.
type GenerateAnalysesRequest struct {
	Matches []MatchSelectionRequest `json:"matches" binding:"required,min=1,dive"`
}

// MatchSelectionRequest is one match to analyse.
type MatchSelectionRequest struct {
	Match string `json:"match" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

// MatchListResponse represents the response for listing upcoming matches.
type MatchListResponse struct {
	Matches []adapter.UpcomingMatch `json:"matches"`
}

// AnalysisListResponse represents the response for listing analyses.
type AnalysisListResponse struct {
	Analyses []entity.GameAnalysis `json:"analyses"`
}

// GenerateAnalysesResponse represents the outcome of a batch run.
type GenerateAnalysesResponse struct {
	Generated int                   `json:"generated"`
	Failed    int                   `json:"failed"`
	Analyses  []entity.GameAnalysis `json:"analyses"`
}

// ToMatchListResponse converts the use case output to a response DTO.
func ToMatchListResponse(output *analysis.FetchMatchesOutput) MatchListResponse {
	matches := output.Matches
	if matches == nil {
		matches = []adapter.UpcomingMatch{}
	}
	return MatchListResponse{Matches: matches}
}

// ToGenerateAnalysesResponse converts the use case output to a response DTO.
func ToGenerateAnalysesResponse(output *analysis.GenerateAnalysesOutput) GenerateAnalysesResponse {
	return GenerateAnalysesResponse{
		Generated: output.Generated,
		Failed:    output.Failed,
		Analyses:  output.Analyses,
	}
}
