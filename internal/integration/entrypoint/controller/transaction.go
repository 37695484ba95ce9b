package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/finance"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	addUseCase      *finance.AddTransactionUseCase
	deleteUseCase   *finance.DeleteTransactionUseCase
	listUseCase     *finance.ListTransactionsUseCase
	insightsUseCase *finance.GetInsightsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	addUseCase *finance.AddTransactionUseCase,
	deleteUseCase *finance.DeleteTransactionUseCase,
	listUseCase *finance.ListTransactionsUseCase,
	insightsUseCase *finance.GetInsightsUseCase,
) *TransactionController {
	return &TransactionController{
		addUseCase:      addUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListTransactionsInput{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date range",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
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

	output, err := c.addUseCase.Execute(ctx.Request.Context(), finance.AddTransactionInput{
		Type:        entity.TransactionType(req.Type),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Transaction)
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteTransactionInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Insights handles GET /transactions/insights requests. The optional date
// window narrows what the oracle gets to see.
func (c *TransactionController) Insights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), finance.GetInsightsInput{
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightsResponse{Insights: output.Insights})
}
