package dto

import (
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/debt"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for registering a debt.
// DueDate is AAAA-MM-DD.
type CreateDebtRequest struct {
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	DueDate     string          `json:"dueDate" binding:"required"`
}

// UpdateDebtRequest represents the request body for editing a debt.
type UpdateDebtRequest struct {
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	DueDate     string          `json:"dueDate" binding:"required"`
	Status      string          `json:"status" binding:"required,oneof=active paid"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts   []entity.Debt         `json:"debts"`
	Summary aggregate.DebtSummary `json:"summary"`
}

// ToDebtListResponse converts the use case output to a response DTO.
func ToDebtListResponse(output *debt.ListDebtsOutput) DebtListResponse {
	debts := output.Debts
	if debts == nil {
		debts = []entity.Debt{}
	}
	return DebtListResponse{
		Debts:   debts,
		Summary: output.Summary,
	}
}
