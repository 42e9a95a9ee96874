package finance

import (
	"context"
	"time"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

// MonthTotals holds the income/expense roll-up for one calendar month.
type MonthTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Summary is the finance dashboard payload: this month against last month
// plus per-category breakdowns for the current month.
type Summary struct {
	ThisMonth         MonthTotals        `json:"this_month"`
	LastMonth         MonthTotals        `json:"last_month"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}

// Summarize loads the recent transactions for the filter and computes the
// monthly summary against the current clock.
func (uc *UseCase) Summarize(ctx context.Context, filter repository.TransactionFilter) (*Summary, error) {
	now := uc.now()
	from := monthStart(now).AddDate(0, -1, 0)
	filter.From = &from

	transactions, err := uc.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary := Summarize(transactions, now)
	return &summary, nil
}

// Summarize rolls up transactions into the monthly summary. Category
// breakdowns cover the current month only, mirroring the dashboard.
func Summarize(transactions []domain.Transaction, now time.Time) Summary {
	summary := Summary{
		IncomeByCategory:  make(map[string]float64),
		ExpenseByCategory: make(map[string]float64),
	}

	thisStart := monthStart(now)
	lastStart := thisStart.AddDate(0, -1, 0)

	for _, tx := range transactions {
		date := tx.Date.In(now.Location())
		switch {
		case !date.Before(thisStart) && date.Before(thisStart.AddDate(0, 1, 0)):
			add(&summary.ThisMonth, tx)
			switch tx.Type {
			case domain.TransactionIncome:
				summary.IncomeByCategory[tx.Category] += tx.Amount
			case domain.TransactionExpense:
				summary.ExpenseByCategory[tx.Category] += tx.Amount
			}
		case !date.Before(lastStart) && date.Before(thisStart):
			add(&summary.LastMonth, tx)
		}
	}

	summary.ThisMonth.Net = summary.ThisMonth.Income - summary.ThisMonth.Expenses
	summary.LastMonth.Net = summary.LastMonth.Income - summary.LastMonth.Expenses
	return summary
}

func add(totals *MonthTotals, tx domain.Transaction) {
	switch tx.Type {
	case domain.TransactionIncome:
		totals.Income += tx.Amount
	case domain.TransactionExpense:
		totals.Expenses += tx.Amount
	}
}

func monthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
