package finance

import (
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
)

func tx(kind, category string, amount float64, date time.Time) domain.Transaction {
	return domain.Transaction{
		Title:    category,
		Type:     kind,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		tx(domain.TransactionIncome, "harvest", 1200, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionIncome, "harvest", 300, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionExpense, "seeds", 450, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionExpense, "fuel", 150, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionIncome, "harvest", 800, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionExpense, "repairs", 200, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		// Outside both months; must be ignored.
		tx(domain.TransactionIncome, "harvest", 9999, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
	}

	summary := Summarize(transactions, now)

	if summary.ThisMonth.Income != 1500 || summary.ThisMonth.Expenses != 600 || summary.ThisMonth.Net != 900 {
		t.Fatalf("this month: %+v", summary.ThisMonth)
	}
	if summary.LastMonth.Income != 800 || summary.LastMonth.Expenses != 200 || summary.LastMonth.Net != 600 {
		t.Fatalf("last month: %+v", summary.LastMonth)
	}
	if got := summary.IncomeByCategory["harvest"]; got != 1500 {
		t.Fatalf("income by category: %v", summary.IncomeByCategory)
	}
	if summary.ExpenseByCategory["seeds"] != 450 || summary.ExpenseByCategory["fuel"] != 150 {
		t.Fatalf("expense by category: %v", summary.ExpenseByCategory)
	}
	// Category breakdowns only cover the current month.
	if _, ok := summary.ExpenseByCategory["repairs"]; ok {
		t.Fatal("last month's categories must not leak into the breakdown")
	}
}

func TestSummarizeMonthBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		tx(domain.TransactionIncome, "a", 100, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		tx(domain.TransactionIncome, "b", 50, time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)),
		tx(domain.TransactionIncome, "c", 25, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	summary := Summarize(transactions, now)
	if summary.ThisMonth.Income != 100 {
		t.Fatalf("this month: %+v", summary.ThisMonth)
	}
	if summary.LastMonth.Income != 75 {
		t.Fatalf("last month: %+v", summary.LastMonth)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, time.Now())
	if summary.ThisMonth.Net != 0 || summary.LastMonth.Net != 0 {
		t.Fatalf("empty summary must be zero: %+v", summary)
	}
	if summary.IncomeByCategory == nil || summary.ExpenseByCategory == nil {
		t.Fatal("category maps must be initialized")
	}
}
