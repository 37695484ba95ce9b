// Package aggregate holds the pure computations behind the dashboard
// numbers. Nothing here touches storage; callers pass in the records and
// get values back.
package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/personal-dashboard/backend/internal/domain/entity"
)

// monthAbbreviations maps month numbers to pt-BR short names.
var monthAbbreviations = map[int]string{
	1: "Jan", 2: "Fev", 3: "Mar", 4: "Abr", 5: "Mai", 6: "Jun",
	7: "Jul", 8: "Ago", 9: "Set", 10: "Out", 11: "Nov", 12: "Dez",
}

// FinanceTotals summarizes income, expense and their balance.
type FinanceTotals struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// Totals sums income and expense over the given transactions.
func Totals(transactions []entity.Transaction) FinanceTotals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return FinanceTotals{
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
	}
}

// CategoryTotal is one slice of the expense-by-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseByCategory groups expense amounts by category. Expenses without a
// category land in the default bucket. Categories appear in first-seen order.
func ExpenseByCategory(transactions []entity.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		category := t.Category
		if category == "" {
			category = entity.DefaultExpenseCategory
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryTotal{Category: category, Total: totals[category]})
	}
	return out
}

// MonthlyBucket is one month of the income/expense summary.
type MonthlyBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySummary buckets transactions by month, labelled "Abr/24" style in
// UTC. The input is newest first, so reversing the first-appearance order
// yields oldest month first.
func MonthlySummary(transactions []entity.Transaction) []MonthlyBucket {
	buckets := make(map[string]*MonthlyBucket)
	var order []string
	for _, t := range transactions {
		date := t.Date.UTC()
		label := fmt.Sprintf("%s/%02d", monthAbbreviations[int(date.Month())], date.Year()%100)
		bucket, seen := buckets[label]
		if !seen {
			bucket = &MonthlyBucket{Month: label, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[label] = bucket
			order = append(order, label)
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(t.Amount)
		}
	}

	out := make([]MonthlyBucket, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, *buckets[order[i]])
	}
	return out
}
