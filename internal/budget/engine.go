package budget

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Bucket holds the expenses assigned to one definition.
type Bucket struct {
	Definition Definition
	Expenses   *ExpenseSet
}

// Assignment maps definitions to the expenses assigned to them.
//
// Buckets of regular definitions come first in catalog order, the fallback
// bucket is last.
type Assignment struct {
	buckets []Bucket
}

// Buckets returns all buckets.
func (a Assignment) Buckets() []Bucket {
	out := make([]Bucket, len(a.buckets))
	copy(out, a.buckets)
	return out
}

// Len returns the number of buckets.
func (a Assignment) Len() int {
	return len(a.buckets)
}

// Get returns the expenses assigned to the definition with the name.
func (a Assignment) Get(name string) (*ExpenseSet, bool) {
	for _, b := range a.buckets {
		if strings.EqualFold(b.Definition.Name, name) {
			return b.Expenses, true
		}
	}

	return nil, false
}

// Sum returns the sum of the expenses assigned to the definition with the
// name. The result is invalid if there is no bucket for the name.
func (a Assignment) Sum(name string) decimal.NullDecimal {
	s, ok := a.Get(name)
	if !ok {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(s.Sum())
}

// Sums returns the sum per definition name.
func (a Assignment) Sums() map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(a.buckets))
	for _, b := range a.buckets {
		sums[b.Definition.Name] = b.Expenses.Sum()
	}

	return sums
}

// BudgetOf returns the definition of the first bucket containing the
// expense with the ID.
func (a Assignment) BudgetOf(id string) (Definition, bool) {
	for _, b := range a.buckets {
		if b.Expenses.Contains(id) {
			return b.Definition, true
		}
	}

	return Definition{}, false
}

// AssignCatalog assigns the expenses to the definitions of the catalog.
//
// One expense can be assigned to several regular definitions. The fallback
// definition, if any, receives all expenses that no regular definition
// matched. Without a fallback, unmatched expenses are not part of the
// assignment.
func AssignCatalog(c *Catalog, expenses []Expense) Assignment {
	a := Assignment{}
	remaining := NewExpenseSet(expenses...)

	for _, def := range c.Regular() {
		matched := FindMatching(def, expenses)
		a.buckets = append(a.buckets, Bucket{Definition: def, Expenses: matched})
		remaining = remaining.Without(matched)
	}

	if fallback, ok := c.Fallback(); ok {
		a.buckets = append(a.buckets, Bucket{Definition: fallback, Expenses: remaining})
	}

	return a
}

// BudgetName returns the name of the single budget for the expense.
//
// An explicit budget that names a definition wins. Otherwise, the first
// regular definition matching the expense is used, then the fallback.
func BudgetName(c *Catalog, e Expense) (string, bool) {
	if def, ok := c.Lookup(e.Budget); ok {
		return def.Name, true
	}

	for _, def := range c.Regular() {
		if newMatcher(def).matches(e) {
			return def.Name, true
		}
	}

	if fallback, ok := c.Fallback(); ok {
		return fallback.Name, true
	}

	return "", false
}

// Engine assigns expenses to the budgets of users.
type Engine struct {
	loader *Loader
}

// NewEngine returns an Engine using the catalogs from loader.
func NewEngine(loader *Loader) *Engine {
	return &Engine{loader: loader}
}

// Catalog returns the catalog of the user.
func (e *Engine) Catalog(ctx context.Context, userKey string) (*Catalog, error) {
	return e.loader.Load(ctx, userKey)
}

// Invalidate drops the cached catalog of the user.
func (e *Engine) Invalidate(userKey string) {
	e.loader.Invalidate(userKey)
}

// Assign assigns the expenses to the budgets of the user, see AssignCatalog.
func (e *Engine) Assign(ctx context.Context, userKey string, expenses []Expense) (Assignment, error) {
	c, err := e.loader.Load(ctx, userKey)
	if err != nil {
		return Assignment{}, err
	}

	return AssignCatalog(c, expenses), nil
}

// FindBudgetName returns the single budget name for the expense in the
// catalog of the user, see BudgetName.
//
// The result can differ from the buckets the expense is in after Assign,
// since an expense can match more than one budget.
func (e *Engine) FindBudgetName(ctx context.Context, userKey string, expense Expense) (string, bool, error) {
	c, err := e.loader.Load(ctx, userKey)
	if err != nil {
		return "", false, err
	}

	name, ok := BudgetName(c, expense)
	return name, ok, nil
}
