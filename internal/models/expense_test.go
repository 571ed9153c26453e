package models_test

import (
	"testing"
	"time"

	"github.com/envelope-zero/expenses/internal/models"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	e := suite.createTestExpense(models.Expense{
		Shop:    "  Betz ",
		Amount:  decimal.NewFromFloat(2.5),
		Payment: "",
	})

	suite.Assert().Equal("Betz", e.Shop)
	suite.Assert().Equal(models.PaymentCash, e.Payment)
	suite.Assert().False(e.Timestamp.IsZero(), "timestamp must default to now")
	suite.Assert().Equal(time.UTC, e.Timestamp.Location())
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"No collection", models.Expense{Collection: " "}, models.ErrCollectionEmpty},
		{"Invalid payment", models.Expense{Collection: "anna", Payment: "cheque"}, models.ErrPaymentInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesBetween() {
	r := types.ForMonth(types.NewMonth(2024, 5), time.UTC)

	suite.createTestExpense(models.Expense{Shop: "Before", Amount: decimal.NewFromInt(1), Timestamp: r.Begin.Add(-time.Second)})
	suite.createTestExpense(models.Expense{Shop: "Last", Amount: decimal.NewFromInt(2), Timestamp: r.End})
	suite.createTestExpense(models.Expense{Shop: "First", Amount: decimal.RequireFromString("3.33"), Timestamp: r.Begin})
	suite.createTestExpense(models.Expense{Shop: "After", Amount: decimal.NewFromInt(4), Timestamp: r.End.Add(time.Minute)})
	suite.createTestExpense(models.Expense{Collection: "bernd", Shop: "Other", Amount: decimal.NewFromInt(5), Timestamp: r.Begin.Add(time.Hour)})

	expenses, err := models.ExpensesBetween(models.DB, "anna", r)
	suite.Require().Nil(err)

	shops := []string{}
	for _, e := range expenses {
		shops = append(shops, e.Shop)
	}
	suite.Assert().Equal([]string{"First", "Last"}, shops, "boundaries are inclusive and results ordered by timestamp")

	sum, err := models.AmountBetween(models.DB, "anna", r)
	suite.Require().Nil(err)
	suite.Assert().True(sum.Equal(decimal.RequireFromString("5.33")), "sum is %s", sum)
}

func (suite *TestSuiteStandard) TestExpenseBerlinTimestamp() {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.T().Skip("time zone database not available")
	}

	// Midnight on May 1st in Berlin is still April in UTC
	suite.createTestExpense(models.Expense{Shop: "Betz", Timestamp: time.Date(2024, 5, 1, 0, 30, 0, 0, berlin)})

	expenses, err := models.ExpensesBetween(models.DB, "anna", types.ForMonth(types.NewMonth(2024, 5), berlin))
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 1)

	expenses, err = models.ExpensesBetween(models.DB, "anna", types.ForMonth(types.NewMonth(2024, 4), berlin))
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestGetExpenseScopedToCollection() {
	e := suite.createTestExpense(models.Expense{Shop: "Betz"})

	found, err := models.GetExpense(models.DB, "anna", e.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(e.ID, found.ID)

	_, err = models.GetExpense(models.DB, "bernd", e.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseEntry() {
	e := suite.createTestExpense(models.Expense{
		Shop:    "Rewe",
		Message: "Brot #lebensmittel",
		City:    "München",
		Amount:  decimal.NewFromInt(3),
		Budget:  "Lebensmittel",
		Payment: "card",
	})

	entry := e.Entry()
	suite.Assert().Equal(e.ID.String(), entry.ID)
	suite.Assert().Equal("Rewe", entry.Shop)
	suite.Assert().Equal("Brot #lebensmittel", entry.Message)
	suite.Assert().Equal("München", entry.City)
	suite.Assert().Equal("Lebensmittel", entry.Budget)
	suite.Assert().False(entry.IsCash())
	suite.Assert().True(entry.Amount.Equal(decimal.NewFromInt(3)))
	suite.Assert().Len(models.Entries([]models.Expense{e, e}), 2)
}
