package dto

import (
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/betting"
	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// CreateBetRequest represents the request body for registering a bet.
// Date is AAAA-MM-DD.
type CreateBetRequest struct {
	Description string          `json:"description" binding:"required"`
	Stake       decimal.Decimal `json:"stake" binding:"required"`
	Odds        decimal.Decimal `json:"odds" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category"`
}

// UpdateBetRequest represents the request body for editing a bet.
type UpdateBetRequest struct {
	Description string          `json:"description" binding:"required"`
	Stake       decimal.Decimal `json:"stake" binding:"required"`
	Odds        decimal.Decimal `json:"odds" binding:"required"`
	Result      string          `json:"result" binding:"required,oneof=won lost pending"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category"`
}

// BetListResponse represents the response for listing bets.
type BetListResponse struct {
	Bets            []entity.Bet             `json:"bets"`
	Summary         aggregate.BettingSummary `json:"summary"`
	ProfitEvolution []aggregate.ProfitPoint  `json:"profitEvolution"`
}

// SettleBetResponse represents the outcome of a single bet check.
type SettleBetResponse struct {
	Bet     entity.Bet `json:"bet"`
	Settled bool       `json:"settled"`
}

// SettleAllResponse represents the outcome of a batch bet check.
type SettleAllResponse struct {
	Attempted    int          `json:"attempted"`
	Updated      int          `json:"updated"`
	StillPending int          `json:"stillPending"`
	Failed       int          `json:"failed"`
	Bets         []entity.Bet `json:"bets"`
}

// ToBetListResponse converts the use case output to a response DTO.
func ToBetListResponse(output *betting.ListBetsOutput) BetListResponse {
	bets := output.Bets
	if bets == nil {
		bets = []entity.Bet{}
	}
	return BetListResponse{
		Bets:            bets,
		Summary:         output.Summary,
		ProfitEvolution: output.ProfitEvolution,
	}
}

// ToSettleAllResponse converts the use case output to a response DTO.
func ToSettleAllResponse(output *betting.SettleAllOutput) SettleAllResponse {
	return SettleAllResponse{
		Attempted:    output.Attempted,
		Updated:      output.Updated,
		StillPending: output.StillPending,
		Failed:       output.Failed,
		Bets:         output.Bets,
	}
}
