package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/envelope-zero/expenses/internal/controllers/v1"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/envelope-zero/expenses/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createMayExpenses creates expenses in May 2024 for anna.
func (suite *TestSuiteStandard) createMayExpenses() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", City: "Landshut", Payment: "card", Amount: v1.AmountOf(decimal.NewFromInt(3)), Timestamp: may15})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Aral", City: "Landshut", Message: "Tanken", Amount: v1.AmountOf(decimal.NewFromInt(50)), Timestamp: may15.Add(time.Hour)})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Betz", City: "München", Message: "Brot #lebensmittel", Amount: v1.AmountOf(decimal.NewFromInt(2)), Timestamp: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)})
}

func (suite *TestSuiteStandard) TestReportMonth() {
	suite.createMayExpenses()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/month?month=2024-05", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	report := response.Data

	suite.Assert().True(report.Range.Begin.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), "range begins %s", report.Range.Begin)
	suite.Assert().True(report.Total.Equal(decimal.NewFromInt(55)), "total is %s", report.Total)
	suite.Assert().Equal("€", report.Currency)

	suite.Require().Len(report.Cities, 2)
	suite.Assert().Equal("Landshut", report.Cities[0].Name)
	suite.Assert().True(report.Cities[0].Sum.Equal(decimal.NewFromInt(53)))
	suite.Assert().True(report.Cities[0].SumCard.Equal(decimal.NewFromInt(3)))
	suite.Assert().Equal("München", report.Cities[1].Name)
	suite.Assert().Equal("Brot", report.Cities[1].Expenses[0].Message)
	suite.Assert().Equal("#lebensmittel", report.Cities[1].Expenses[0].Hashtag)

	suite.Require().Len(report.Shops, 3)
	suite.Assert().Equal("Aral", report.Shops[0].Shop)

	suite.Require().Len(report.Budgets, 2)
	suite.Assert().Equal("Auto", report.Budgets[0].Name)
	suite.Assert().Equal("Lebensmittel", report.Budgets[1].Name)
	suite.Assert().True(report.Budgets[1].Sum.Equal(decimal.NewFromInt(5)))
	suite.Assert().True(report.Budgets[1].Remaining.Equal(decimal.NewFromInt(395)))

	suite.Assert().Equal(5, report.Weeks.Len())
	sum, ok := report.Weeks.Get(20)
	suite.Assert().True(ok)
	suite.Assert().True(sum.Equal(decimal.NewFromInt(53)), "week 20 is %s", sum)

	suite.Assert().Equal("2024-04", report.Previous.String())
	suite.Assert().Equal("2024-06", report.Next.String())
	suite.Assert().Equal("http://example.com/v1/reports/month?month=2024-04", report.Links.Previous)
	suite.Assert().Equal("http://example.com/v1/reports/month?month=2024-06", report.Links.Next)
	suite.Assert().Equal("http://example.com/v1/export/05/2024", report.Links.Export)
}

func (suite *TestSuiteStandard) TestReportNoCatalog() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `[{"shop": "Rewe", "amount": 2, "timestamp": "2024-05-15T12:00:00Z"}]`, bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/month?month=2024-05", "", bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(2)))
	suite.Assert().Len(response.Data.Budgets, 0)
}

func (suite *TestSuiteStandard) TestReportCurrent() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", Amount: v1.AmountOf(decimal.NewFromInt(7))})
	now := time.Now().In(time.UTC)

	tests := []struct {
		url   string
		begin time.Time
		total int64
	}{
		{"http://example.com/v1/reports/month", types.CurrentMonth(now).Begin, 7},
		{"http://example.com/v1/reports/week", types.CurrentWeek(now).Begin, 7},
		{"http://example.com/v1/reports/last-month", types.LastMonth(now).Begin, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", anna)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)

			assert.True(t, tt.begin.Equal(response.Data.Range.Begin), "range begins %s, expected %s", response.Data.Range.Begin, tt.begin)
			assert.True(t, response.Data.Total.Equal(decimal.NewFromInt(tt.total)), "total is %s", response.Data.Total)
			assert.False(t, response.Data.Next.After(types.MonthOf(now)), "next month must not be after the current month")
		})
	}
}

func (suite *TestSuiteStandard) TestReportInvalidMonth() {
	for _, url := range []string{"http://example.com/v1/reports/month?month=05-2024", "http://example.com/v1/weeks?month=2024-00"} {
		r := test.Request(suite.T(), http.MethodGet, url, "", anna)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Contains(r.Body.String(), "YYYY-MM")
	}
}

func (suite *TestSuiteStandard) TestReportDBClosed() {
	suite.CloseDB()

	for _, url := range []string{"http://example.com/v1/reports/month", "http://example.com/v1/reports/last-month", "http://example.com/v1/reports/week", "http://example.com/v1/weeks"} {
		r := test.Request(suite.T(), http.MethodGet, url, "", anna)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}
}

func (suite *TestSuiteStandard) TestWeeks() {
	suite.createMayExpenses()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/weeks?month=2024-05", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WeeksResponse
	test.DecodeResponse(suite.T(), &r, &response)

	weeks := []int{}
	for _, w := range response.Data.Weeks {
		weeks = append(weeks, w.Week)
	}
	suite.Assert().Equal([]int{18, 19, 20, 21, 22}, weeks)
	suite.Assert().True(response.Data.Weeks[0].Sum.Equal(decimal.NewFromInt(2)), "week 18 is %s", response.Data.Weeks[0].Sum)
	suite.Assert().True(response.Data.Weeks[1].Sum.IsZero())
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(55)))
}

func (suite *TestSuiteStandard) TestReportOptions() {
	for _, url := range []string{"http://example.com/v1/reports/month", "http://example.com/v1/reports/last-month", "http://example.com/v1/reports/week", "http://example.com/v1/weeks", "http://example.com/v1/export/05/2024", "http://example.com/v1"} {
		r := test.Request(suite.T(), http.MethodOptions, url, "", anna)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}
