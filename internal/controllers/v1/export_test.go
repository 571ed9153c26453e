package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/envelope-zero/expenses/test"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.createMayExpenses()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/05/2024", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="expenses_05-2024.csv"`, r.Header().Get("Content-Disposition"))

	expected := "Date,Description,Category,Amount\n" +
		"02.05.2024 08:00,Brot #lebensmittel (Betz),Lebensmittel,\"2,00 €\"\n" +
		"15.05.2024 12:00,(Rewe),Lebensmittel,\"3,00 €\"\n" +
		"15.05.2024 13:00,Tanken (Aral),Auto,\"50,00 €\"\n"
	suite.Assert().Equal(expected, r.Body.String())
}

func (suite *TestSuiteStandard) TestExportEnglish() {
	suite.createTestExpense(suite.T(), expenseAt("Rewe", may15))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/5/2024", "", map[string]string{
		"X-Forwarded-User": "anna",
		"Accept-Language":  "en",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("Date,Description,Category,Amount\n15.05.2024 12:00,(Rewe),Lebensmittel,1.00 €\n", r.Body.String())
}

func (suite *TestSuiteStandard) TestExportInvalidMonth() {
	suite.createTestExpense(suite.T(), expenseAt("Rewe", may15))
	now := time.Now().In(time.UTC)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/13/2024", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	filename := fmt.Sprintf("expenses_%02d-%04d.csv", int(now.Month()), now.Year())
	suite.Assert().Equal(fmt.Sprintf("attachment; filename=%q", filename), r.Header().Get("Content-Disposition"), "invalid months export the current month")
	suite.Assert().Equal("Date,Description,Category,Amount\n", r.Body.String())
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/05/2024", "", anna)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
