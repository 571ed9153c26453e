package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/envelope-zero/expenses/internal/controllers/v1"
	"github.com/envelope-zero/expenses/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var may15 = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func (suite *TestSuiteStandard) createTestExpense(t *testing.T, c v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	if c.Amount.IsZero() {
		c.Amount = v1.AmountOf(decimal.NewFromInt(1))
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{c}, anna)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ExpenseResponse{}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	tests := []struct {
		name     string
		amount   v1.Amount
		language string
		expected string
		status   int
	}{
		{"Number", v1.AmountOf(decimal.RequireFromString("3.49")), "", "3.49", http.StatusCreated},
		{"German string", v1.LocaleAmount("3,49 €"), "", "3.49", http.StatusCreated},
		{"English string", v1.LocaleAmount("3.49"), "en-US,en;q=0.9", "3.49", http.StatusCreated},
		{"German with grouping", v1.LocaleAmount("1.234,50"), "de-DE", "1234.5", http.StatusCreated},
		{"Not a number", v1.LocaleAmount("drei"), "", "", http.StatusBadRequest},
		{"Missing", v1.Amount{}, "", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := map[string]string{"X-Forwarded-User": "anna"}
			if tt.language != "" {
				headers["Accept-Language"] = tt.language
			}

			body := []v1.ExpenseEditable{{Shop: "Rewe", Amount: tt.amount, Timestamp: may15}}
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusCreated {
				assert.Nil(t, response.Data[0].Data)
				assert.NotNil(t, response.Data[0].Error)
				return
			}

			e := response.Data[0].Data
			assert.True(t, e.Amount.Equal(decimal.RequireFromString(tt.expected)), "amount is %s", e.Amount)
			assert.Equal(t, "cash", e.Payment)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/expenses/%s", e.ID), e.Links.Self)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/expenses/%s/budget", e.ID), e.Links.Budget)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateMixed() {
	body := `[
		{"shop": "Rewe", "amount": 3.49},
		{"shop": "Aral", "amount": 50, "payment": "cheque"}
	]`

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", body, anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Rewe", response.Data[0].Data.Shop)
	suite.Assert().Nil(response.Data[1].Data)
	suite.Assert().Contains(*response.Data[1].Error, "payment")
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Broken JSON", `[{"shop": "Rewe"`},
		{"Not a list", `{"shop": "Rewe"}`},
		{"Amount is an object", `[{"amount": {}}]`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body, anna)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `[{"amount": 1}]`, anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExpensesRequireIdentity() {
	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1"},
		{http.MethodGet, "http://example.com/v1/expenses"},
		{http.MethodPost, "http://example.com/v1/expenses"},
		{http.MethodGet, "http://example.com/v1/budgets"},
		{http.MethodGet, "http://example.com/v1/reports/month"},
		{http.MethodGet, "http://example.com/v1/export/05/2024"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "", map[string]string{"X-Forwarded-User": " "})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.Contains(t, r.Body.String(), "X-Forwarded-User")
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetMonth() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", Amount: v1.AmountOf(decimal.NewFromInt(3)), Timestamp: may15.Add(time.Hour)})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Betz", Amount: v1.AmountOf(decimal.NewFromInt(2)), Timestamp: may15})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "April", Timestamp: time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=2024-05", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Betz", response.Data[0].Shop, "expenses must be ordered by timestamp")
	suite.Assert().Equal("Rewe", response.Data[1].Shop)
	suite.Assert().True(response.Sum.Equal(decimal.NewFromInt(5)), "sum is %s", response.Sum)
}

func (suite *TestSuiteStandard) TestExpensesGetDefaultsToCurrentMonth() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Now"})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Old", Timestamp: may15})

	for _, query := range []string{"", "?week=current"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/expenses"+query, "", anna)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, 1)
			assert.Equal(t, "Now", response.Data[0].Shop)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", City: "Landshut", Payment: "card", Timestamp: may15})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", City: "München", Timestamp: may15})
	suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Aral", City: "Landshut", Budget: "Auto", Timestamp: may15})

	tests := []struct {
		query string
		len   int
	}{
		{"shop=Rewe", 2},
		{"city=Landshut", 2},
		{"shop=Rewe&city=Landshut", 1},
		{"payment=card", 1},
		{"payment=cash", 2},
		{"budget=Auto", 1},
		{"shop=Edeka", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/expenses?month=2024-05&"+tt.query, "", anna)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetInvalidQuery() {
	tests := []struct {
		query string
		err   string
	}{
		{"month=2024-13", "the month query parameter must be in YYYY-MM format"},
		{"month=May", "the month query parameter must be in YYYY-MM format"},
		{"week=next", "the week query parameter must be 'current'"},
		{"week=current&month=2024-05", "only one of the month and week query parameters can be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "", anna)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestExpensesCollections() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", Timestamp: may15})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=2024-05", "", bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0, "expenses of other collections must not be listed")

	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
		r = test.Request(suite.T(), method, e.Data.Links.Self, "", bernd)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.T(), http.MethodPatch, e.Data.Links.Self, `{"shop": "Betz"}`, bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", Message: "Brot", City: "Landshut", Timestamp: may15})

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Existing", e.Data.Links.Self, http.StatusOK},
		{"Not existing", "http://example.com/v1/expenses/5a9bd8b6-4a4a-4bf0-a907-e2a3a7fbb1c2", http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/expenses/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", anna)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ExpenseResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, e.Data.ID, response.Data.ID)
			assert.Equal(t, "Brot", response.Data.Message)
			assert.True(t, may15.Equal(response.Data.Timestamp))
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe", Message: "Brot", Amount: v1.AmountOf(decimal.NewFromInt(3)), Timestamp: may15})

	r := test.Request(suite.T(), http.MethodPatch, e.Data.Links.Self, `{"message": "", "amount": "4,20", "payment": "card"}`, anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Rewe", response.Data.Shop, "fields not in the body must not change")
	suite.Assert().Equal("", response.Data.Message, "fields in the body must be set even to zero values")
	suite.Assert().Equal("card", response.Data.Payment)
	suite.Assert().True(response.Data.Amount.Equal(decimal.RequireFromString("4.2")), "amount is %s", response.Data.Amount)
	suite.Assert().True(may15.Equal(response.Data.Timestamp))

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "", anna)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("card", response.Data.Payment, "update must be stored")
}

func (suite *TestSuiteStandard) TestExpenseUpdateInvalid() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe"})

	tests := []struct {
		name string
		url  string
		body string
	}{
		{"Broken JSON", e.Data.Links.Self, `{"shop": "Betz"`},
		{"Empty body", e.Data.Links.Self, ""},
		{"Invalid payment", e.Data.Links.Self, `{"payment": "cheque"}`},
		{"Invalid amount", e.Data.Links.Self, `{"amount": "viel"}`},
		{"Invalid UUID", "http://example.com/v1/expenses/not-a-uuid", `{"shop": "Betz"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.url, tt.body, anna)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe"})

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/expenses/not-a-uuid", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseBudget() {
	tests := []struct {
		name    string
		expense v1.ExpenseEditable
		headers map[string]string
		budget  string
		found   bool
	}{
		{"Shop", v1.ExpenseEditable{Shop: "Rewe"}, anna, "Lebensmittel", true},
		{"Shop glob", v1.ExpenseEditable{Shop: "Edeka Center"}, anna, "Lebensmittel", true},
		{"Message", v1.ExpenseEditable{Shop: "Aral", Message: "Tanken"}, anna, "Auto", true},
		{"Hashtag", v1.ExpenseEditable{Shop: "Betz", Message: "Brot #lebensmittel"}, anna, "Lebensmittel", true},
		{"Explicit", v1.ExpenseEditable{Shop: "Rewe", Budget: "Auto"}, anna, "Auto", true},
		{"Fallback", v1.ExpenseEditable{Shop: "Betz"}, anna, "Sonstiges", true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			e := suite.createTestExpense(t, tt.expense)

			r := test.Request(t, http.MethodGet, e.Data.Links.Budget, "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseBudgetResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.budget, response.Data.Budget)
			assert.Equal(t, tt.found, response.Data.Found)
		})
	}
}

// TestExpenseBudgetWithoutCatalog verifies that a user without a catalog
// has no budgets for the expenses of a shared collection.
func (suite *TestSuiteStandard) TestExpenseBudgetWithoutCatalog() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `[{"shop": "Rewe", "amount": 2}]`, bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)

	r = test.Request(suite.T(), http.MethodGet, created.Data[0].Data.Links.Budget, "", bernd)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseBudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Data.Budget)
	suite.Assert().False(response.Data.Found)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Shop: "Rewe"})

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/expenses", http.StatusNoContent, "OPTIONS, GET, POST"},
		{e.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{e.Data.Links.Budget, http.StatusNoContent, "OPTIONS, GET"},
		{"http://example.com/v1/expenses/5a9bd8b6-4a4a-4bf0-a907-e2a3a7fbb1c2", http.StatusNotFound, ""},
		{"http://example.com/v1/expenses/not-a-uuid/budget", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(strings.TrimPrefix(tt.url, "http://example.com"), func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "", anna)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func expenseAt(shop string, t time.Time) v1.ExpenseEditable {
	return v1.ExpenseEditable{Shop: shop, Timestamp: t}
}
