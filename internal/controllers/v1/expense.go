package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/httputil"
	"github.com/envelope-zero/expenses/internal/models"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
		r.OPTIONS("/:id/budget", co.OptionsExpenseBudget)
		r.GET("/:id/budget", co.GetExpenseBudget)
	}
}

// queryRange returns the range for the month and week query parameters.
// Without either, it is the current month up to now.
func (co Controller) queryRange(month, week string) (types.Range, error) {
	if month != "" && week != "" {
		return types.Range{}, errRangeInvalid
	}

	now := co.now()
	if week != "" {
		if week != "current" {
			return types.Range{}, errWeekInvalid
		}
		return types.CurrentWeek(now), nil
	}

	if month == "" {
		return types.CurrentMonth(now), nil
	}

	m, err := types.ParseMonth(month)
	if err != nil {
		return types.Range{}, errMonthInvalid
	}

	return types.ForMonth(m, co.location()), nil
}

// expense returns the expense with the ID in the URI if it belongs to the
// collection of the user.
func expense(c *gin.Context) (models.Expense, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Expense{}, err
	}

	return models.GetExpense(models.DB, collection(c), uri.ID.UUID)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	_, err := expense(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/budget [options]
func (co Controller) OptionsExpenseBudget(c *gin.Context) {
	_, err := expense(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create expenses
// @Description	Creates new expenses. Amounts can be numbers or strings in the format of the Accept-Language locale
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		401
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Param			Accept-Language	header		string	false	"Locale for amounts given as string, defaults to de"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}
	tag := locale(c)

	for _, editable := range editables {
		e, err := editable.model(collection(c), tag)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&e).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := co.newExpense(c, e)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns the expenses of a month or the current week, ordered by timestamp. Defaults to the current month.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		401
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			month	query	string	false	"Year and month in YYYY-MM format"
// @Param			week	query	string	false	"Set to 'current' for the current week"
// @Param			shop	query	string	false	"Filter by shop"
// @Param			city	query	string	false	"Filter by city"
// @Param			payment	query	string	false	"Filter by payment"
// @Param			budget	query	string	false	"Filter by explicitly chosen budget"
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	r, err := co.queryRange(filter.Month, filter.Week)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	q := models.DB
	if len(queryFields) > 0 {
		filterModel := filter.model()
		q = q.Where(&filterModel, queryFields...)
	}

	expenses, err := models.ExpensesBetween(q, collection(c), r)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, co.newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Sum:  budget.SumBetween(models.Entries(expenses)),
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		401
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	e, err := expense(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := co.newExpense(c, e)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Get budget of expense
// @Description	Returns the name of the first budget of the user the expense belongs to
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseBudgetResponse
// @Failure		400	{object}	ExpenseBudgetResponse
// @Failure		401
// @Failure		404	{object}	ExpenseBudgetResponse
// @Failure		500	{object}	ExpenseBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/budget [get]
func (co Controller) GetExpenseBudget(c *gin.Context) {
	e, err := expense(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseBudgetResponse{
			Error: &s,
		})
		return
	}

	name, found, err := co.Engine.FindBudgetName(c.Request.Context(), user(c), e.Entry())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseBudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseBudgetResponse{Data: &ExpenseBudget{
		Budget: name,
		Found:  found,
	}})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		401
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	e, err := expense(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err == nil {
		err = data.apply(&e, updateFields, locale(c))
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Save(&e).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := co.newExpense(c, e)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	e, err := expense(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&e).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
