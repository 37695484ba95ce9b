package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// DebtSummary summarizes outstanding and settled amounts.
type DebtSummary struct {
	TotalOwed decimal.Decimal `json:"totalOwed"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Active    int             `json:"active"`
}

// Debts computes what is still owed across active debts and what has been
// paid across all of them, closed ones included.
func Debts(debts []entity.Debt) DebtSummary {
	s := DebtSummary{
		TotalOwed: decimal.Zero,
		TotalPaid: decimal.Zero,
	}
	for _, d := range debts {
		s.TotalPaid = s.TotalPaid.Add(d.AmountPaid)
		if d.Status == entity.DebtStatusActive {
			s.TotalOwed = s.TotalOwed.Add(d.Remaining())
			s.Active++
		}
	}
	return s
}
