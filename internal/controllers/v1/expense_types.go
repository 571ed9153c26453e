package v1

import (
	"fmt"
	"time"

	"github.com/envelope-zero/expenses/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Shop      string    `json:"shop" example:"Rewe"`                                              // Where the money was spent
	Message   string    `json:"message" example:"Brot #lebensmittel"`                             // Free text. A hashtag assigns the expense to a budget
	City      string    `json:"city" example:"Landshut"`                                          // City of the shop
	Amount    Amount    `json:"amount" swaggertype:"string" example:"3,49"`                       // A number, or a string in the format of the Accept-Language locale
	Payment   string    `json:"payment" example:"cash" default:"cash" enums:"cash,card"`          // How the expense was paid
	Budget    string    `json:"budget" example:"Lebensmittel"`                                    // Name of a budget the expense explicitly belongs to
	Timestamp time.Time `json:"timestamp" example:"2024-05-15T12:00:00+02:00" format:"date-time"` // Time of the expense. Defaults to now
}

func (editable ExpenseEditable) model(collection string, tag language.Tag) (models.Expense, error) {
	amount, err := editable.Amount.Decimal(tag)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		Collection: collection,
		Shop:       editable.Shop,
		Message:    editable.Message,
		City:       editable.City,
		Amount:     amount,
		Payment:    editable.Payment,
		Budget:     editable.Budget,
		Timestamp:  editable.Timestamp,
	}, nil
}

// apply sets the fields of the expense that are named in fields.
func (editable ExpenseEditable) apply(e *models.Expense, fields []any, tag language.Tag) error {
	set := func(name string) bool {
		return slices.Contains(fields, any(name))
	}

	if set("Amount") {
		amount, err := editable.Amount.Decimal(tag)
		if err != nil {
			return err
		}
		e.Amount = amount
	}

	if set("Shop") {
		e.Shop = editable.Shop
	}
	if set("Message") {
		e.Message = editable.Message
	}
	if set("City") {
		e.City = editable.City
	}
	if set("Payment") {
		e.Payment = editable.Payment
	}
	if set("Budget") {
		e.Budget = editable.Budget
	}
	if set("Timestamp") {
		e.Timestamp = editable.Timestamp
	}

	return nil
}

type ExpenseLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`          // The expense itself
	Budget string `json:"budget" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f/budget"` // The budget the expense belongs to
}

type Expense struct {
	models.DefaultModel
	Shop      string          `json:"shop" example:"Rewe"`                           // Where the money was spent
	Message   string          `json:"message" example:"Brot #lebensmittel"`          // Free text
	City      string          `json:"city" example:"Landshut"`                       // City of the shop
	Amount    decimal.Decimal `json:"amount" example:"3.49"`                         // Amount of the expense
	Payment   string          `json:"payment" example:"cash"`                        // How the expense was paid
	Budget    string          `json:"budget" example:"Lebensmittel"`                 // Name of a budget the expense explicitly belongs to
	Timestamp time.Time       `json:"timestamp" example:"2024-05-15T12:00:00+02:00"` // Time of the expense in the home location
	Links     ExpenseLinks    `json:"links"`
}

func (co Controller) newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.ContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		Shop:         model.Shop,
		Message:      model.Message,
		City:         model.City,
		Amount:       model.Amount,
		Payment:      model.Payment,
		Budget:       model.Budget,
		Timestamp:    model.Timestamp.In(co.location()),
		Links: ExpenseLinks{
			Self:   fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/expenses/%s/budget", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense       `json:"data"`                                                          // List of expenses, ordered by timestamp
	Sum   decimal.Decimal `json:"sum" example:"120.5"`                                           // Sum of all listed expenses
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseBudget struct {
	Budget string `json:"budget" example:"Lebensmittel"` // Name of the budget, empty if no budget matches
	Found  bool   `json:"found" example:"true"`          // Does a budget match the expense?
}

type ExpenseBudgetResponse struct {
	Data  *ExpenseBudget `json:"data"`                                                          // The budget of the expense
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Month   string `form:"month" filterField:"false"` // Year and month in YYYY-MM format
	Week    string `form:"week" filterField:"false"`  // "current" for the current week
	Shop    string `form:"shop"`                      // By shop
	City    string `form:"city"`                      // By city
	Payment string `form:"payment"`                   // By payment
	Budget  string `form:"budget"`                    // By explicitly chosen budget
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Shop:    f.Shop,
		City:    f.City,
		Payment: f.Payment,
		Budget:  f.Budget,
	}
}
