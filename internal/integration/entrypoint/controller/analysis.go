package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/analysis"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// AnalysisController handles game analysis endpoints.
type AnalysisController struct {
	fetchMatches *analysis.FetchMatchesUseCase
	generate     *analysis.GenerateAnalysesUseCase
	listUseCase  *analysis.ListAnalysesUseCase
	deleteOne    *analysis.DeleteAnalysisUseCase
	clearAll     *analysis.ClearAnalysesUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(
	fetchMatches *analysis.FetchMatchesUseCase,
	generate *analysis.GenerateAnalysesUseCase,
	listUseCase *analysis.ListAnalysesUseCase,
	deleteOne *analysis.DeleteAnalysisUseCase,
	clearAll *analysis.ClearAnalysesUseCase,
) *AnalysisController {
	return &AnalysisController{
		fetchMatches: fetchMatches,
		generate:     generate,
		listUseCase:  listUseCase,
		deleteOne:    deleteOne,
		clearAll:     clearAll,
	}
}

// List handles GET /analyses requests.
func (c *AnalysisController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	analyses := output.Analyses
	if analyses == nil {
		analyses = []entity.GameAnalysis{}
	}
	ctx.JSON(http.StatusOK, dto.AnalysisListResponse{Analyses: analyses})
}

// Matches handles GET /analyses/matches requests.
func (c *AnalysisController) Matches(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.fetchMatches.Execute(ctx.Request.Context(), analysis.FetchMatchesInput{Date: date})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchListResponse(output))
}

// Generate handles POST /analyses/generate requests.
func (c *AnalysisController) Generate(ctx *gin.Context) {
	var req dto.GenerateAnalysesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	selections := make([]analysis.MatchSelection, 0, len(req.Matches))
	for _, m := range req.Matches {
		date, err := time.ParseInLocation("2006-01-02", m.Date, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid match date format, expected AAAA-MM-DD",
			})
			return
		}
		selections = append(selections, analysis.MatchSelection{
			Match: m.Match,
			Date:  date,
		})
	}

	output, err := c.generate.Execute(ctx.Request.Context(), analysis.GenerateAnalysesInput{
		Selections: selections,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerateAnalysesResponse(output))
}

// Delete handles DELETE /analyses/:id requests.
func (c *AnalysisController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid analysis ID format",
		})
		return
	}

	if err := c.deleteOne.Execute(ctx.Request.Context(), analysis.DeleteAnalysisInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Clear handles DELETE /analyses requests.
func (c *AnalysisController) Clear(ctx *gin.Context) {
	if err := c.clearAll.Execute(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
