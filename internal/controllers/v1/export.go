package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/envelope-zero/expenses/internal/httputil"
	"github.com/envelope-zero/expenses/internal/report"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for CSV exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/:year", co.OptionsExport)
	r.GET("/:month/:year", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Param			month	path	string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			year	path	string	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/export/{month}/{year} [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export month
// @Description	Exports all expenses of a month as CSV with their budget as category. An invalid month or year exports the current month.
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		401
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"Month, 1 to 12"
// @Param			year	path		string	true	"Year"
// @Param			Accept-Language	header		string	false	"Locale for the amounts, defaults to de"
// @Router			/v1/export/{month}/{year} [get]
func (co Controller) GetExport(c *gin.Context) {
	var uri URIExport
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	r := types.ParseMonthRange(uri.Month, uri.Year, co.now())

	expenses, err := entries(c, r)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = report.WriteCSV(c.Request.Context(), &buf, co.Engine, user(c), expenses, co.location(), locale(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(r.Month())))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
