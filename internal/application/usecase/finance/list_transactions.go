package finance

import (
	"context"
	"time"

	"github.com/personal-dashboard/backend/internal/application/usecase/aggregate"
	"github.com/personal-dashboard/backend/internal/application/usecase/daterange"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	"github.com/personal-dashboard/backend/internal/store"
)

// ListTransactionsInput represents the optional date window for listing.
type ListTransactionsInput struct {
	StartDate string
	EndDate   string
}

// ListTransactionsOutput bundles the filtered transactions with the
// aggregates computed over the same window.
type ListTransactionsOutput struct {
	Transactions      []entity.Transaction
	Totals            aggregate.FinanceTotals
	ExpenseByCategory []aggregate.CategoryTotal
	MonthlySummary    []aggregate.MonthlyBucket
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactions *store.Collection[entity.Transaction]
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactions *store.Collection[entity.Transaction]) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactions: transactions}
}

// Execute lists transactions newest first, filtered by the optional window.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	window, err := daterange.New(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	transactions := daterange.Filter(uc.transactions.Items(), window,
		func(t entity.Transaction) time.Time { return t.Date })

	return &ListTransactionsOutput{
		Transactions:      transactions,
		Totals:            aggregate.Totals(transactions),
		ExpenseByCategory: aggregate.ExpenseByCategory(transactions),
		MonthlySummary:    aggregate.MonthlySummary(transactions),
	}, nil
}
