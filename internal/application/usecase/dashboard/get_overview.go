// Package dashboard contains the cross-tracker overview use case.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/daterange"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// GetOverviewInput represents the optional date window for the overview.
type GetOverviewInput struct {
	StartDate string
	EndDate   string
}

// GetOverviewOutput is the single payload behind the dashboard home.
type GetOverviewOutput struct {
	NetBalance        decimal.Decimal           `json:"netBalance"`
	TotalIncome       decimal.Decimal           `json:"totalIncome"`
	TotalExpense      decimal.Decimal           `json:"totalExpense"`
	BettingProfit     decimal.Decimal           `json:"bettingProfit"`
	BettingROI        float64                   `json:"bettingRoi"`
	TotalOwed         decimal.Decimal           `json:"totalOwed"`
	IdeaCount         int                       `json:"ideaCount"`
	ExpenseByCategory []aggregate.CategoryTotal `json:"expenseByCategory"`
	MonthlySummary    []aggregate.MonthlyBucket `json:"monthlySummary"`
	ProfitEvolution   []aggregate.ProfitPoint   `json:"profitEvolution"`
	RecentActivity    []entity.Activity         `json:"recentActivity"`
}

// GetOverviewUseCase assembles the dashboard numbers from every tracker.
type GetOverviewUseCase struct {
	store *store.Store
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(s *store.Store) *GetOverviewUseCase {
	return &GetOverviewUseCase{store: s}
}

// Execute computes the overview. The window narrows transactions and bets;
// debts and ideas are always global.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	window, err := daterange.New(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	transactions := daterange.Filter(uc.store.Transactions.Items(), window,
		func(t entity.Transaction) time.Time { return t.Date })
	bets := daterange.Filter(uc.store.Bets.Items(), window,
		func(b entity.Bet) time.Time { return b.Date })

	totals := aggregate.Totals(transactions)
	betting := aggregate.Summary(bets)
	debts := aggregate.Debts(uc.store.Debts.Items())

	return &GetOverviewOutput{
		NetBalance:        totals.NetBalance,
		TotalIncome:       totals.TotalIncome,
		TotalExpense:      totals.TotalExpense,
		BettingProfit:     betting.TotalProfit,
		BettingROI:        betting.ROI,
		TotalOwed:         debts.TotalOwed,
		IdeaCount:         uc.store.Ideas.Len(),
		ExpenseByCategory: aggregate.ExpenseByCategory(transactions),
		MonthlySummary:    aggregate.MonthlySummary(transactions),
		ProfitEvolution:   aggregate.ProfitEvolution(bets),
		RecentActivity:    aggregate.RecentActivity(transactions, bets),
	}, nil
}
