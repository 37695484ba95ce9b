package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-dashboard/backend/internal/application/usecase/debt"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	addUseCase    *debt.AddDebtUseCase
	updateUseCase *debt.UpdateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	listUseCase   *debt.ListDebtsUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	addUseCase *debt.AddDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
) *DebtController {
	return &DebtController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, err := time.ParseInLocation("2006-01-02", req.DueDate, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), debt.AddDebtInput{
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		AmountPaid:  req.AmountPaid,
		DueDate:     dueDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Debt)
}

// Update handles PATCH /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	dueDate, err := time.ParseInLocation("2006-01-02", req.DueDate, time.UTC)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected AAAA-MM-DD",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		ID:          id,
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		AmountPaid:  req.AmountPaid,
		DueDate:     dueDate,
		Status:      entity.DebtStatus(req.Status),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	if output.Debt == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, output.Debt)
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
