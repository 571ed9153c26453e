// Package budget assigns expenses to user defined budgets and aggregates them.
//
// A user's budgets are described by a Catalog of Definitions, loaded from a
// JSON resource and cached for the lifetime of the process. Expenses match a
// Definition by an explicit budget name, a regular expression on the message
// or a list of shops.
package budget

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Definition describes one budget and the rules to match expenses to it.
//
// Definitions are values and must be treated as read-only once they are part
// of a Catalog.
type Definition struct {
	Name         string              `json:"name" validate:"required" example:"Lebensmittel"`   // Unique name of the budget
	Description  string              `json:"description" example:"Groceries and drugstore"`     // Description for display
	MonthlyCap   decimal.NullDecimal `json:"amount" swaggertype:"number" example:"400"`         // Amount available per month. Unset or <= 0 means no cap
	MessageRegex string              `json:"messageRegex,omitempty" example:".*(Rewe|Edeka).*"` // Regular expression the complete message must match
	Shops        []string            `json:"shops,omitempty" example:"Betz,Wackerl"`            // Shops whose expenses belong to the budget, case-insensitive
	Fallback     bool                `json:"fallback" example:"false"`                          // Collects all expenses no other budget matched
}

// Regex returns the regular expression applied to expense messages.
//
// Without an explicit MessageRegex, messages containing the hashtag of the
// budget match, e.g. "#lebensmittel".
func (d Definition) Regex() string {
	if strings.TrimSpace(d.MessageRegex) != "" {
		return d.MessageRegex
	}

	return ".*(" + regexp.QuoteMeta(d.Hashtag()) + ").*"
}

// Hashtag returns the hashtag for the budget: its name without spaces in
// lower case, prefixed with "#".
func (d Definition) Hashtag() string {
	return "#" + strings.ToLower(strings.ReplaceAll(d.Name, " ", ""))
}

// HasCap reports if the budget has a positive monthly cap.
func (d Definition) HasCap() bool {
	return d.MonthlyCap.Valid && d.MonthlyCap.Decimal.IsPositive()
}

// shopPatterns returns the shops in lower case.
func (d Definition) shopPatterns() []string {
	patterns := make([]string, 0, len(d.Shops))
	for _, s := range d.Shops {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			patterns = append(patterns, s)
		}
	}

	return patterns
}
