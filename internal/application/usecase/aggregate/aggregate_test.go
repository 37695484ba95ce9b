package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(t entity.TransactionType, category string, amount int64, date time.Time) entity.Transaction {
	return *entity.NewTransaction(t, "txn", category, decimal.NewFromInt(amount), date)
}

func settledBet(stake, odds int64, result entity.BetResult, date time.Time) entity.Bet {
	b := entity.NewBet("bet", decimal.NewFromInt(stake), decimal.NewFromInt(odds), date, "")
	b.Settle(result)
	return *b
}

func TestTotals(t *testing.T) {
	transactions := []entity.Transaction{
		txn(entity.TransactionTypeIncome, "", 1000, day(2024, 3, 1)),
		txn(entity.TransactionTypeExpense, "Mercado", 300, day(2024, 3, 2)),
		txn(entity.TransactionTypeExpense, "Lazer", 100, day(2024, 3, 3)),
	}

	got := Totals(transactions)
	if !got.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", got.TotalIncome)
	}
	if !got.TotalExpense.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected expense 400, got %s", got.TotalExpense)
	}
	if !got.NetBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected balance 600, got %s", got.NetBalance)
	}
}

func TestExpenseByCategoryDefaultsBlankToOutros(t *testing.T) {
	transactions := []entity.Transaction{
		txn(entity.TransactionTypeExpense, "Mercado", 50, day(2024, 3, 1)),
		txn(entity.TransactionTypeExpense, "", 20, day(2024, 3, 2)),
		txn(entity.TransactionTypeExpense, "Mercado", 30, day(2024, 3, 3)),
		txn(entity.TransactionTypeIncome, "Salário", 1000, day(2024, 3, 4)),
	}

	got := ExpenseByCategory(transactions)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Category != "Mercado" || !got[0].Total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected Mercado 80, got %s %s", got[0].Category, got[0].Total)
	}
	if got[1].Category != "Outros" || !got[1].Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected Outros 20, got %s %s", got[1].Category, got[1].Total)
	}
}

func TestMonthlySummaryOldestMonthFirst(t *testing.T) {
	// Newest first, the way the collection stores them.
	transactions := []entity.Transaction{
		txn(entity.TransactionTypeExpense, "", 50, day(2024, 4, 10)),
		txn(entity.TransactionTypeIncome, "", 900, day(2024, 4, 1)),
		txn(entity.TransactionTypeExpense, "", 200, day(2024, 3, 15)),
		txn(entity.TransactionTypeIncome, "", 1000, day(2024, 3, 1)),
	}

	got := MonthlySummary(transactions)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if got[0].Month != "Mar/24" {
		t.Errorf("expected Mar/24 first, got %s", got[0].Month)
	}
	if !got[0].Income.Equal(decimal.NewFromInt(1000)) || !got[0].Expense.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Mar/24: expected 1000/200, got %s/%s", got[0].Income, got[0].Expense)
	}
	if got[1].Month != "Abr/24" {
		t.Errorf("expected Abr/24 second, got %s", got[1].Month)
	}
	if !got[1].Income.Equal(decimal.NewFromInt(900)) || !got[1].Expense.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Abr/24: expected 900/50, got %s/%s", got[1].Income, got[1].Expense)
	}
}

func TestSummaryROIIgnoresPending(t *testing.T) {
	bets := []entity.Bet{
		settledBet(100, 2, entity.BetResultWon, day(2024, 3, 1)),
		settledBet(50, 3, entity.BetResultLost, day(2024, 3, 2)),
		*entity.NewBet("open", decimal.NewFromInt(500), decimal.NewFromInt(2), day(2024, 3, 3), ""),
	}

	got := Summary(bets)
	if !got.TotalStaked.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected staked 150, got %s", got.TotalStaked)
	}
	if !got.TotalProfit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected profit 50, got %s", got.TotalProfit)
	}
	if math.Abs(got.ROI-33.33) > 0.01 {
		t.Errorf("expected ROI near 33.33, got %f", got.ROI)
	}
	if got.Wins != 1 || got.Losses != 1 || got.Pending != 1 {
		t.Errorf("expected 1/1/1 counts, got %d/%d/%d", got.Wins, got.Losses, got.Pending)
	}
}

func TestSummaryZeroStakedYieldsZeroROI(t *testing.T) {
	got := Summary([]entity.Bet{
		*entity.NewBet("open", decimal.NewFromInt(100), decimal.NewFromInt(2), day(2024, 3, 1), ""),
	})
	if got.ROI != 0 {
		t.Errorf("expected ROI 0 with nothing settled, got %f", got.ROI)
	}
}

func TestProfitEvolutionIsDateAscendingPrefixSum(t *testing.T) {
	bets := []entity.Bet{
		settledBet(50, 3, entity.BetResultLost, day(2024, 3, 10)),
		*entity.NewBet("open", decimal.NewFromInt(500), decimal.NewFromInt(2), day(2024, 3, 5), ""),
		settledBet(100, 2, entity.BetResultWon, day(2024, 3, 1)),
	}

	got := ProfitEvolution(bets)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if !got[0].Date.Equal(day(2024, 3, 1)) || !got[0].Profit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("first point: expected 2024-03-01 profit 100, got %s %s", got[0].Date, got[0].Profit)
	}
	if !got[1].Date.Equal(day(2024, 3, 10)) || !got[1].Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("second point: expected 2024-03-10 profit 50, got %s %s", got[1].Date, got[1].Profit)
	}
}

func TestDebts(t *testing.T) {
	active := *entity.NewDebt("carro", decimal.NewFromInt(1000), decimal.NewFromInt(300), day(2024, 6, 1))
	paid := entity.NewDebt("cartão", decimal.NewFromInt(500), decimal.NewFromInt(200), day(2024, 5, 1))
	paid.MarkPaid()

	got := Debts([]entity.Debt{active, *paid})
	if !got.TotalOwed.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected owed 700, got %s", got.TotalOwed)
	}
	if !got.TotalPaid.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected paid 800, got %s", got.TotalPaid)
	}
	if got.Active != 1 {
		t.Errorf("expected 1 active debt, got %d", got.Active)
	}
}

func TestRecentActivityMergesAndCaps(t *testing.T) {
	transactions := []entity.Transaction{
		txn(entity.TransactionTypeExpense, "", 10, day(2024, 3, 9)),
		txn(entity.TransactionTypeIncome, "", 20, day(2024, 3, 7)),
		txn(entity.TransactionTypeExpense, "", 30, day(2024, 3, 5)),
		txn(entity.TransactionTypeExpense, "", 40, day(2024, 3, 1)),
	}
	bets := []entity.Bet{
		settledBet(15, 2, entity.BetResultWon, day(2024, 3, 8)),
		settledBet(25, 2, entity.BetResultLost, day(2024, 3, 6)),
		settledBet(35, 2, entity.BetResultWon, day(2024, 3, 4)),
		settledBet(45, 2, entity.BetResultLost, day(2024, 3, 2)),
	}

	got := RecentActivity(transactions, bets)
	if len(got) != 5 {
		t.Fatalf("expected feed capped at 5, got %d", len(got))
	}
	wantDates := []time.Time{
		day(2024, 3, 9), day(2024, 3, 8), day(2024, 3, 7), day(2024, 3, 6), day(2024, 3, 5),
	}
	for i, want := range wantDates {
		if !got[i].Date.Equal(want) {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].Date)
		}
	}
	if got[0].Kind != entity.ActivityKindTransaction {
		t.Errorf("expected newest item to be a transaction, got %s", got[0].Kind)
	}
	if got[1].Kind != entity.ActivityKindBet {
		t.Errorf("expected second item to be a bet, got %s", got[1].Kind)
	}
	// The fourth transaction never entered the feed.
	for _, a := range got {
		if a.Date.Equal(day(2024, 3, 1)) {
			t.Error("expected only the three newest transactions to be considered")
		}
	}
}
