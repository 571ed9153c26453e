package v1

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/httputil"
	"github.com/envelope-zero/expenses/internal/models"
	"github.com/envelope-zero/expenses/internal/report"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/month", co.OptionsReport)
	r.GET("/month", co.GetMonthReport)
	r.OPTIONS("/last-month", co.OptionsReport)
	r.GET("/last-month", co.GetLastMonthReport)
	r.OPTIONS("/week", co.OptionsReport)
	r.GET("/week", co.GetWeekReport)
}

// RegisterWeekRoutes registers the routes for weekly sums with
// the RouterGroup that is passed.
func (co Controller) RegisterWeekRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsWeeks)
	r.GET("", co.GetWeeks)
}

type ReportLinks struct {
	Previous string `json:"previous" example:"https://example.com/api/v1/reports/month?month=2024-04"` // Report for the previous month
	Next     string `json:"next" example:"https://example.com/api/v1/reports/month?month=2024-06"`     // Report for the next month, the current month at most
	Export   string `json:"export" example:"https://example.com/api/v1/export/05/2024"`                // CSV export of the month the report begins in
}

type Report struct {
	report.Report
	Links ReportLinks `json:"links"`
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                                // The report
	Error *string `json:"error" example:"the month query parameter must be in YYYY-MM format"` // The error, if any occurred
}

type Weeks struct {
	Weeks []budget.WeekAmount `json:"weeks"`                // Sums by ISO week, ordered by week number
	Total decimal.Decimal     `json:"total" example:"84.2"` // Sum of all weeks
}

type WeeksResponse struct {
	Data  *Weeks  `json:"data"`                                                                // The weekly sums
	Error *string `json:"error" example:"the month query parameter must be in YYYY-MM format"` // The error, if any occurred
}

func exportPath(m types.Month) string {
	return fmt.Sprintf("/v1/export/%02d/%04d", int(m.Month()), m.Year())
}

// entries returns the expenses of the collection of the user in the range.
func entries(c *gin.Context, r types.Range) ([]budget.Expense, error) {
	expenses, err := models.ExpensesBetween(models.DB, collection(c), r)
	if err != nil {
		return nil, err
	}

	return models.Entries(expenses), nil
}

// respondReport responds with the report for the range.
func (co Controller) respondReport(c *gin.Context, r types.Range) {
	expenses, err := entries(c, r)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	rep, err := report.Build(c.Request.Context(), co.Engine, user(c), r, expenses, co.now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.ContextURL))
	c.JSON(http.StatusOK, ReportResponse{Data: &Report{
		Report: rep,
		Links: ReportLinks{
			Previous: fmt.Sprintf("%s/v1/reports/month?month=%s", url, rep.Previous),
			Next:     fmt.Sprintf("%s/v1/reports/month?month=%s", url, rep.Next),
			Export:   url + exportPath(r.Month()),
		},
	}})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/month [options]
// @Router			/v1/reports/last-month [options]
// @Router			/v1/reports/week [options]
func (co Controller) OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month report
// @Description	Returns the report for a month. Defaults to the current month up to now.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		401
// @Failure		500		{object}	ReportResponse
// @Param			month	query		string	false	"Year and month in YYYY-MM format"
// @Router			/v1/reports/month [get]
func (co Controller) GetMonthReport(c *gin.Context) {
	var query QueryMonth
	_ = c.Bind(&query)

	r, err := co.queryRange(query.Month, "")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	co.respondReport(c, r)
}

// @Summary		Get last month report
// @Description	Returns the report for the whole last month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		401
// @Failure		500	{object}	ReportResponse
// @Router			/v1/reports/last-month [get]
func (co Controller) GetLastMonthReport(c *gin.Context) {
	co.respondReport(c, types.LastMonth(co.now()))
}

// @Summary		Get week report
// @Description	Returns the report for the current week, Monday to Sunday
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		401
// @Failure		500	{object}	ReportResponse
// @Router			/v1/reports/week [get]
func (co Controller) GetWeekReport(c *gin.Context) {
	co.respondReport(c, types.CurrentWeek(co.now()))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/weeks [options]
func (co Controller) OptionsWeeks(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get weekly sums
// @Description	Returns the sums per ISO week for all weeks of a month. Defaults to the current month up to now.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	WeeksResponse
// @Failure		400		{object}	WeeksResponse
// @Failure		401
// @Failure		500		{object}	WeeksResponse
// @Param			month	query		string	false	"Year and month in YYYY-MM format"
// @Router			/v1/weeks [get]
func (co Controller) GetWeeks(c *gin.Context) {
	var query QueryMonth
	_ = c.Bind(&query)

	r, err := co.queryRange(query.Month, "")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeksResponse{
			Error: &s,
		})
		return
	}

	expenses, err := entries(c, r)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeksResponse{
			Error: &s,
		})
		return
	}

	weeks := budget.SumByWeek(expenses, r)
	c.JSON(http.StatusOK, WeeksResponse{Data: &Weeks{
		Weeks: weeks.Weeks(),
		Total: weeks.Total(),
	}})
}
