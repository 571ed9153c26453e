// Package report builds the period reports and CSV exports for the
// expenses of a user.
package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// Row is one expense as shown in a report.
type Row struct {
	ID        string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the expense
	Timestamp time.Time       `json:"timestamp" example:"2024-05-15T12:00:00+02:00"`     // Time of the expense in the home location
	Shop      string          `json:"shop" example:"Rewe"`                               // Shop
	Message   string          `json:"message" example:"Brot"`                            // Message with the budget hashtag removed
	Hashtag   string          `json:"hashtag" example:"#lebensmittel"`                   // Hashtag of the budget the expense is assigned to, if any
	Amount    decimal.Decimal `json:"amount" example:"3.49"`                             // Amount
	Cash      bool            `json:"cash" example:"true"`                               // Was it paid in cash?
}

// CityReport contains the expenses of one city.
type CityReport struct {
	Name     string          `json:"name" example:"Landshut"` // Name of the city
	Sum      decimal.Decimal `json:"sum" example:"120.5"`     // Sum of all expenses in the city
	SumCard  decimal.Decimal `json:"sumCard" example:"80"`    // Sum of the expenses paid by card
	Expenses []Row           `json:"expenses"`                // Expenses in the order of their timestamp
}

// ShopSum is the sum of all expenses in one shop.
type ShopSum struct {
	Shop  string          `json:"shop" example:"Rewe"` // Name of the shop
	Sum   decimal.Decimal `json:"sum" example:"54.2"`  // Sum of the expenses
	Count int             `json:"count" example:"4"`   // Number of expenses
}

// Report summarizes the expenses of a time range.
type Report struct {
	Range    types.Range          `json:"range"`                                           // The time range of the report
	Previous types.Month          `json:"previous" example:"2024-04" swaggertype:"string"` // The month before the range
	Next     types.Month          `json:"next" example:"2024-06" swaggertype:"string"`     // The month after the range, but not after the current month
	Total    decimal.Decimal      `json:"total" example:"512.34"`                          // Sum of all expenses
	Currency string               `json:"currency" example:"€"`                            // Currency symbol
	Cities   []CityReport         `json:"cities"`                                          // Expenses by city, sorted by name
	Shops    []ShopSum            `json:"shops"`                                           // Sums by shop, highest first
	Budgets  []budget.Info        `json:"budgets"`                                         // Budgets with expenses, sorted by name
	Weeks    budget.WeeklyAmounts `json:"weeks" swaggertype:"array,object"`                // Sums by ISO week
}

// Build creates the report for the expenses of the user in the range.
//
// now is used to cap the link to the next month.
func Build(ctx context.Context, engine *budget.Engine, user string, r types.Range, expenses []budget.Expense, now time.Time) (Report, error) {
	a, err := engine.Assign(ctx, user, expenses)
	if err != nil {
		return Report{}, err
	}

	return build(a, r, expenses, now), nil
}

func build(a budget.Assignment, r types.Range, expenses []budget.Expense, now time.Time) Report {
	loc := r.Location()

	cities := make(map[string]*CityReport)
	shops := make(map[string]*ShopSum)

	for _, e := range expenses {
		city, ok := cities[e.City]
		if !ok {
			city = &CityReport{Name: e.City, Expenses: []Row{}}
			cities[e.City] = city
		}

		city.Sum = city.Sum.Add(e.Amount)
		if !e.IsCash() {
			city.SumCard = city.SumCard.Add(e.Amount)
		}
		city.Expenses = append(city.Expenses, row(a, e, loc))

		shop, ok := shops[e.Shop]
		if !ok {
			shop = &ShopSum{Shop: e.Shop}
			shops[e.Shop] = shop
		}
		shop.Sum = shop.Sum.Add(e.Amount)
		shop.Count++
	}

	report := Report{
		Range:    r,
		Previous: r.Month().Previous(),
		Next:     r.Month().Next(now),
		Total:    budget.SumBetween(expenses),
		Currency: CurrencySymbol(),
		Cities:   make([]CityReport, 0, len(cities)),
		Shops:    make([]ShopSum, 0, len(shops)),
		Budgets:  budget.Infos(a),
		Weeks:    budget.SumByWeek(expenses, r),
	}

	names := maps.Keys(cities)
	sort.Strings(names)
	for _, name := range names {
		report.Cities = append(report.Cities, *cities[name])
	}

	for _, s := range shops {
		report.Shops = append(report.Shops, *s)
	}
	sort.Slice(report.Shops, func(i, j int) bool {
		if c := report.Shops[i].Sum.Cmp(report.Shops[j].Sum); c != 0 {
			return c > 0
		}
		return report.Shops[i].Shop < report.Shops[j].Shop
	})

	return report
}

// row returns the report row for the expense. The hashtag of the first
// budget the expense is assigned to is removed from the message.
func row(a budget.Assignment, e budget.Expense, loc *time.Location) Row {
	r := Row{
		ID:        e.ID,
		Timestamp: e.Timestamp.In(loc),
		Shop:      e.Shop,
		Message:   e.Message,
		Amount:    e.Amount,
		Cash:      e.IsCash(),
	}

	def, ok := a.BudgetOf(e.ID)
	if !ok {
		return r
	}

	r.Hashtag = def.Hashtag()
	r.Message = strings.TrimSpace(strings.ReplaceAll(e.Message, r.Hashtag, ""))
	return r
}
