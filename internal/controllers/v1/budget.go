package v1

import (
	"net/http"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the budget catalog with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
	}

	{
		r.OPTIONS("/cache", co.OptionsBudgetCache)
		r.DELETE("/cache", co.DeleteBudgetCache)
	}
}

// Budget is a budget definition of the user.
type Budget struct {
	Name        string              `json:"name" example:"Lebensmittel"`                   // Name of the budget
	Description string              `json:"description" example:"Groceries and drugstore"` // Description of the budget
	Amount      decimal.NullDecimal `json:"amount" swaggertype:"number" example:"400"`     // Monthly cap, null if there is none
	Regex       string              `json:"regex" example:".*(#lebensmittel).*"`           // Effective regular expression for messages
	Shops       []string            `json:"shops" example:"Rewe,edeka*"`                   // Shops whose expenses belong to the budget
	Fallback    bool                `json:"fallback" example:"false"`                      // Collects all expenses no other budget matched
}

func newBudget(def budget.Definition) Budget {
	shops := def.Shops
	if shops == nil {
		shops = []string{}
	}

	return Budget{
		Name:        def.Name,
		Description: def.Description,
		Amount:      def.MonthlyCap,
		Regex:       def.Regex(),
		Shops:       shops,
		Fallback:    def.Fallback,
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                           // The budgets of the user in catalog order
	Error *string  `json:"error" example:"the user key must not be empty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/cache [options]
func (co Controller) OptionsBudgetCache(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get budgets
// @Description	Returns the budget catalog of the user. A missing or malformed catalog has no budgets.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		401
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	catalog, err := co.Engine.Catalog(c.Request.Context(), user(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, catalog.Len())
	for _, def := range catalog.Definitions() {
		data = append(data, newBudget(def))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Reload budgets
// @Description	Removes the budget catalog of the user from the cache. It is read again on the next request.
// @Tags			Budgets
// @Success		204
// @Failure		401
// @Router			/v1/budgets/cache [delete]
func (co Controller) DeleteBudgetCache(c *gin.Context) {
	co.Engine.Invalidate(user(c))
	c.JSON(http.StatusNoContent, nil)
}
