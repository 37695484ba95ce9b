package finance

import (
	"context"
	"time"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/application/usecase/daterange"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
	"github.com/personal-dashboard/backend/internal/store"
)

// GetInsightsInput represents the optional date window for the commentary.
type GetInsightsInput struct {
	StartDate string
	EndDate   string
}

// GetInsightsOutput represents the output of the financial commentary.
type GetInsightsOutput struct {
	Insights string
}

// GetInsightsUseCase asks the oracle for commentary over the windowed
// ledger. The oracle only sees transactions inside the window.
type GetInsightsUseCase struct {
	transactions *store.Collection[entity.Transaction]
	oracle       adapter.OracleService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactions *store.Collection[entity.Transaction],
	oracle adapter.OracleService,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactions: transactions,
		oracle:       oracle,
	}
}

// Execute produces the financial insights text.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	if !uc.oracle.IsAvailable() {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleUnavailable,
			"insights require a configured AI service",
			domainerror.ErrOracleUnavailable,
		)
	}

	window, err := daterange.New(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	transactions := daterange.Filter(uc.transactions.Items(), window,
		func(t entity.Transaction) time.Time { return t.Date })

	insights, err := uc.oracle.FinancialInsights(ctx, transactions)
	if err != nil {
		return nil, err
	}
	return &GetInsightsOutput{Insights: insights}, nil
}
