package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/betting"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// BetController handles betting endpoints.
type BetController struct {
	addUseCase      *betting.AddBetUseCase
	updateUseCase   *betting.UpdateBetUseCase
	deleteUseCase   *betting.DeleteBetUseCase
	listUseCase     *betting.ListBetsUseCase
	settleUseCase   *betting.SettleBetUseCase
	settleAll       *betting.SettleAllUseCase
	insightsUseCase *betting.GetInsightsUseCase
}

// NewBetController creates a new bet controller instance.
func NewBetController(
	addUseCase *betting.AddBetUseCase,
	updateUseCase *betting.UpdateBetUseCase,
	deleteUseCase *betting.DeleteBetUseCase,
	listUseCase *betting.ListBetsUseCase,
	settleUseCase *betting.SettleBetUseCase,
	settleAll *betting.SettleAllUseCase,
	insightsUseCase *betting.GetInsightsUseCase,
) *BetController {
	return &BetController{
		addUseCase:      addUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
		settleUseCase:   settleUseCase,
		settleAll:       settleAll,
		insightsUseCase: insightsUseCase,
	}
}

// List handles GET /bets requests.
func (c *BetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), betting.ListBetsInput{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date range",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBetListResponse(output))
}

// Create handles POST /bets requests.
func (c *BetController) Create(ctx *gin.Context) {
	var req dto.CreateBetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), betting.AddBetInput{
		Description: req.Description,
		Stake:       req.Stake,
		Odds:        req.Odds,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Bet)
}

// Update handles PATCH /bets/:id requests.
func (c *BetController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bet ID format",
		})
		return
	}

	var req dto.UpdateBetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), betting.UpdateBetInput{
		ID:          id,
		Description: req.Description,
		Stake:       req.Stake,
		Odds:        req.Odds,
		Result:      entity.BetResult(req.Result),
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Bet)
}

// Delete handles DELETE /bets/:id requests.
func (c *BetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bet ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), betting.DeleteBetInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Settle handles POST /bets/:id/settle requests.
func (c *BetController) Settle(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bet ID format",
		})
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), betting.SettleBetInput{ID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleBetResponse{
		Bet:     *output.Bet,
		Settled: output.Settled,
	})
}

// SettleAll handles POST /bets/settle-pending requests.
func (c *BetController) SettleAll(ctx *gin.Context) {
	output, err := c.settleAll.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettleAllResponse(output))
}

// Insights handles GET /bets/insights requests. The optional date window
// narrows what the oracle gets to see.
func (c *BetController) Insights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), betting.GetInsightsInput{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightsResponse{Insights: output.Insights})
}
