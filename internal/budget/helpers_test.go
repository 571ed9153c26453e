package budget_test

import (
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func capOf(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func ids(s *budget.ExpenseSet) []string {
	out := []string{}
	for _, e := range s.Expenses() {
		out = append(out, e.ID)
	}

	return out
}

var day = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
