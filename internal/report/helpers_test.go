package report_test

import (
	"testing/fstest"
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/shopspring/decimal"
)

const catalogJSON = `[
	{"name": "Lebensmittel", "description": "Groceries", "amount": 400, "shops": ["Rewe", "edeka*"]},
	{"name": "Auto", "description": "Car", "amount": 100, "messageRegex": ".*(Tanken|Auto).*"},
	{"name": "Sonstiges", "description": "Everything else", "fallback": true}
]`

func testEngine() *budget.Engine {
	source := budget.FSSource{FS: fstest.MapFS{
		"anna.json": &fstest.MapFile{Data: []byte(catalogJSON)},
	}}

	return budget.NewEngine(budget.NewLoader(source, budget.NewMemoryCache()))
}

func expense(id, shop, message, city, amount string, ts time.Time) budget.Expense {
	return budget.Expense{
		ID:        id,
		Shop:      shop,
		Message:   message,
		City:      city,
		Amount:    decimal.RequireFromString(amount),
		Timestamp: ts,
		Payment:   budget.PaymentCash,
	}
}
