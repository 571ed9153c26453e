package budget

import (
	"encoding/json"
	"sort"

	"github.com/envelope-zero/expenses/internal/types"
	"github.com/shopspring/decimal"
)

// WeekAmount is the sum of expenses in one ISO week.
type WeekAmount struct {
	Week int             `json:"week" example:"19"`  // ISO week number
	Sum  decimal.Decimal `json:"sum" example:"42.5"` // Sum of all expenses in the week
}

// WeeklyAmounts are the sums per ISO week, ordered by week number.
type WeeklyAmounts struct {
	weeks []WeekAmount
}

// Weeks returns the sums ordered by week number.
func (w WeeklyAmounts) Weeks() []WeekAmount {
	out := make([]WeekAmount, len(w.weeks))
	copy(out, w.weeks)
	return out
}

// Get returns the sum for the week number.
func (w WeeklyAmounts) Get(week int) (decimal.Decimal, bool) {
	for _, a := range w.weeks {
		if a.Week == week {
			return a.Sum, true
		}
	}

	return decimal.Zero, false
}

// Len returns the number of weeks.
func (w WeeklyAmounts) Len() int {
	return len(w.weeks)
}

// Total returns the sum over all weeks.
func (w WeeklyAmounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range w.weeks {
		total = total.Add(a.Sum)
	}

	return total
}

func (w WeeklyAmounts) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Weeks())
}

func (w *WeeklyAmounts) UnmarshalJSON(data []byte) error {
	var weeks []WeekAmount
	if err := json.Unmarshal(data, &weeks); err != nil {
		return err
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Week < weeks[j].Week
	})
	w.weeks = weeks
	return nil
}

// SumByWeek sums the expense amounts per ISO week number.
//
// Every week touched by the days from r.Begin up to r.End is part of the
// result, with a zero sum if there are no expenses. Week numbers are
// computed in the location of the range and are not distinguished by year.
func SumByWeek(expenses []Expense, r types.Range) WeeklyAmounts {
	loc := r.Location()
	sums := make(map[int]decimal.Decimal)

	for _, e := range expenses {
		_, week := e.Timestamp.In(loc).ISOWeek()
		sums[week] = sums[week].Add(e.Amount)
	}

	for d := r.Begin; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		_, week := d.ISOWeek()
		if _, ok := sums[week]; !ok {
			sums[week] = decimal.Zero
		}
	}

	w := WeeklyAmounts{weeks: make([]WeekAmount, 0, len(sums))}
	for week, sum := range sums {
		w.weeks = append(w.weeks, WeekAmount{Week: week, Sum: sum})
	}

	sort.Slice(w.weeks, func(i, j int) bool {
		return w.weeks[i].Week < w.weeks[j].Week
	})

	return w
}

// SumBetween returns the sum of all expense amounts.
func SumBetween(expenses []Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}

	return sum
}
