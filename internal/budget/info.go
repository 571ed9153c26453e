package budget

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Info is the state of one budget for display.
type Info struct {
	Name        string          `json:"name" example:"Lebensmittel"`                   // Name of the budget
	Description string          `json:"description" example:"Groceries and drugstore"` // Description of the budget
	Sum         decimal.Decimal `json:"sum" example:"120.5"`                           // Sum of the assigned expenses
	Remaining   decimal.Decimal `json:"remaining" example:"279.5"`                     // Amount left of the monthly cap. Zero without a cap
	IsNegative  bool            `json:"isNegative" example:"false"`                    // Is the budget overspent?
}

// Present computes the display state of the budget for the sum. An absent
// sum is treated as zero.
func Present(def Definition, sum decimal.NullDecimal) Info {
	s := decimal.Zero
	if sum.Valid {
		s = sum.Decimal
	}

	remaining := decimal.Zero
	if def.HasCap() {
		remaining = def.MonthlyCap.Decimal.Sub(s)
	}

	return Info{
		Name:        def.Name,
		Description: def.Description,
		Sum:         s,
		Remaining:   remaining,
		IsNegative:  remaining.IsNegative(),
	}
}

// Infos presents all budgets of the assignment with a positive sum, sorted
// by name.
func Infos(a Assignment) []Info {
	infos := []Info{}

	for _, b := range a.buckets {
		sum := b.Expenses.Sum()
		if !sum.IsPositive() {
			continue
		}

		infos = append(infos, Present(b.Definition, decimal.NewNullDecimal(sum)))
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}
