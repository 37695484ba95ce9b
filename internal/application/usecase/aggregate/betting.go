package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// BettingSummary summarizes settled bets. ROI is a percentage.
type BettingSummary struct {
	TotalStaked decimal.Decimal `json:"totalStaked"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	ROI         float64         `json:"roi"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	Pending     int             `json:"pending"`
}

// Summary computes staked, profit and ROI over settled bets. Pending bets
// only contribute to the pending count. A zero staked total yields ROI 0
// rather than a division by zero.
func Summary(bets []entity.Bet) BettingSummary {
	s := BettingSummary{
		TotalStaked: decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, b := range bets {
		switch b.Result {
		case entity.BetResultWon:
			s.Wins++
		case entity.BetResultLost:
			s.Losses++
		default:
			s.Pending++
			continue
		}
		s.TotalStaked = s.TotalStaked.Add(b.Stake)
		s.TotalProfit = s.TotalProfit.Add(b.Profit)
	}
	if s.TotalStaked.IsPositive() {
		roi, _ := s.TotalProfit.Div(s.TotalStaked).Mul(decimal.NewFromInt(100)).Float64()
		s.ROI = roi
	}
	return s
}

// ProfitPoint is one step of the cumulative profit curve.
type ProfitPoint struct {
	Date   time.Time       `json:"date"`
	Profit decimal.Decimal `json:"profit"`
}

// ProfitEvolution returns the running profit total over settled bets in
// date-ascending order.
func ProfitEvolution(bets []entity.Bet) []ProfitPoint {
	settled := make([]entity.Bet, 0, len(bets))
	for _, b := range bets {
		if b.IsSettled() {
			settled = append(settled, b)
		}
	}
	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].Date.Before(settled[j].Date)
	})

	points := make([]ProfitPoint, 0, len(settled))
	running := decimal.Zero
	for _, b := range settled {
		running = running.Add(b.Profit)
		points = append(points, ProfitPoint{Date: b.Date, Profit: running})
	}
	return points
}
