package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/expenses/internal/controllers/v1"
	"github.com/envelope-zero/expenses/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetsGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)

	groceries := response.Data[0]
	suite.Assert().Equal("Lebensmittel", groceries.Name)
	suite.Assert().Equal("Groceries", groceries.Description)
	suite.Assert().True(groceries.Amount.Valid)
	suite.Assert().True(groceries.Amount.Decimal.Equal(decimal.NewFromInt(400)))
	suite.Assert().Equal(".*(#lebensmittel).*", groceries.Regex, "budgets without a message regex match their hashtag")
	suite.Assert().Equal([]string{"Rewe", "edeka*"}, groceries.Shops)

	suite.Assert().Equal("Auto", response.Data[1].Name)
	suite.Assert().Equal(".*(Tanken|Auto).*", response.Data[1].Regex)
	suite.Assert().Equal([]string{}, response.Data[1].Shops)

	suite.Assert().Equal("Sonstiges", response.Data[2].Name)
	suite.Assert().True(response.Data[2].Fallback)
	suite.Assert().False(response.Data[2].Amount.Valid)
}

func (suite *TestSuiteStandard) TestBudgetsGetNoCatalog() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "", bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().NotNil(response.Data, "an empty catalog must be an empty list")
}

func (suite *TestSuiteStandard) TestBudgetsGetMalformedCatalog() {
	dir := suite.T().TempDir()
	test.WriteCatalog(suite.T(), dir, "anna", `[{"name": "Lebensmittel"`)
	suite.T().Setenv("BUDGET_DIR", dir)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestBudgetsCacheDelete() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/cache", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets/cache", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))
}
