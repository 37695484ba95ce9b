package dto

import (
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/finance"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. Date is AAAA-MM-DD.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions      []entity.Transaction      `json:"transactions"`
	Totals            aggregate.FinanceTotals   `json:"totals"`
	ExpenseByCategory []aggregate.CategoryTotal `json:"expenseByCategory"`
	MonthlySummary    []aggregate.MonthlyBucket `json:"monthlySummary"`
}

// InsightsResponse represents an AI commentary response.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// ToTransactionListResponse converts the use case output to a response DTO.
func ToTransactionListResponse(output *finance.ListTransactionsOutput) TransactionListResponse {
	transactions := output.Transactions
	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	return TransactionListResponse{
		Transactions:      transactions,
		Totals:            output.Totals,
		ExpenseByCategory: output.ExpenseByCategory,
		MonthlySummary:    output.MonthlySummary,
	}
}
