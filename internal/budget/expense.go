package budget

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCash is the payment used when an expense does not specify one.
const PaymentCash = "cash"

// Expense is a single expense as seen by the matching engine.
//
// Empty strings are treated as absent values: an expense without a message
// never matches a regex, one without a shop never matches a shop list.
type Expense struct {
	ID        string          `json:"id"`
	Shop      string          `json:"shop"`
	Message   string          `json:"message"`
	City      string          `json:"city"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Budget    string          `json:"budget"` // Budget name explicitly chosen by the user
	Payment   string          `json:"payment"`
}

// IsCash reports if the expense was paid in cash.
func (e Expense) IsCash() bool {
	return e.Payment == "" || e.Payment == PaymentCash
}

// ExpenseSet is a set of expenses, unique by ID. It keeps insertion order.
//
// The zero value is an empty set. All read methods are safe to call on a
// nil set.
type ExpenseSet struct {
	index map[string]struct{}
	items []Expense
}

// NewExpenseSet returns a set containing the given expenses.
func NewExpenseSet(expenses ...Expense) *ExpenseSet {
	s := &ExpenseSet{
		index: make(map[string]struct{}, len(expenses)),
		items: make([]Expense, 0, len(expenses)),
	}

	for _, e := range expenses {
		s.Add(e)
	}

	return s
}

// Add adds the expense if no expense with the same ID is in the set yet.
// It reports whether the expense was added.
func (s *ExpenseSet) Add(e Expense) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}

	if _, ok := s.index[e.ID]; ok {
		return false
	}

	s.index[e.ID] = struct{}{}
	s.items = append(s.items, e)
	return true
}

// Contains reports whether an expense with the ID is in the set.
func (s *ExpenseSet) Contains(id string) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[id]
	return ok
}

// Len returns the number of expenses in the set.
func (s *ExpenseSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Expenses returns a copy of the expenses in insertion order.
func (s *ExpenseSet) Expenses() []Expense {
	if s == nil {
		return []Expense{}
	}

	out := make([]Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Sum returns the sum of the amounts of all expenses.
func (s *ExpenseSet) Sum() decimal.Decimal {
	sum := decimal.Zero
	if s == nil {
		return sum
	}

	for _, e := range s.items {
		sum = sum.Add(e.Amount)
	}

	return sum
}

// Without returns a new set with all expenses of s that are not in other.
func (s *ExpenseSet) Without(other *ExpenseSet) *ExpenseSet {
	out := NewExpenseSet()
	if s == nil {
		return out
	}

	for _, e := range s.items {
		if !other.Contains(e.ID) {
			out.Add(e)
		}
	}

	return out
}

// MarshalJSON encodes the set as a list of expenses.
func (s *ExpenseSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Expenses())
}
