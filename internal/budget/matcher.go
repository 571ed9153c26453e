package budget

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// matcher decides if single expenses belong to a definition.
type matcher struct {
	name    string
	pattern Pattern
	shops   []string
}

func newMatcher(def Definition) matcher {
	p := CompilePattern(def.Regex())
	if p.Err() != nil {
		log.Warn().Err(p.Err()).Str("budget", def.Name).Msg("ignoring message pattern")
	}

	return matcher{
		name:    def.Name,
		pattern: p,
		shops:   def.shopPatterns(),
	}
}

// matches reports if the expense is tagged with the budget, its message
// matches the pattern or its shop is one of the shops.
func (m matcher) matches(e Expense) bool {
	return m.tagged(e) || m.pattern.Matches(e.Message) || m.shop(e)
}

// tagged ignores case so that tags agree with Catalog.Lookup.
func (m matcher) tagged(e Expense) bool {
	return e.Budget != "" && strings.EqualFold(e.Budget, m.name)
}

// shop matches entries without "*" exactly, others as glob patterns.
func (m matcher) shop(e Expense) bool {
	if e.Shop == "" {
		return false
	}

	shop := strings.ToLower(e.Shop)
	for _, s := range m.shops {
		if glob.Glob(s, shop) {
			return true
		}
	}

	return false
}

// FindMatching returns all expenses that belong to the definition, in input
// order. An expense belongs to a definition if any of these holds:
//
//   - its budget is the name of the definition
//   - its complete message matches the regular expression of the definition
//   - its shop is in the shop list of the definition
//
// An invalid regular expression is logged and matches no message.
func FindMatching(def Definition, expenses []Expense) *ExpenseSet {
	m := newMatcher(def)

	matched := NewExpenseSet()
	for _, e := range expenses {
		if m.matches(e) {
			matched.Add(e)
		}
	}

	return matched
}
