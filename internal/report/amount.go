package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrAmountInvalid = errors.New("the amount is not a valid number")

// Currency is the currency all amounts are in.
var Currency = currency.EUR

type separators struct {
	decimal string
	group   string
}

// separatorsFor derives the decimal and grouping separators of the locale
// by formatting a known number.
func separatorsFor(tag language.Tag) separators {
	r := []rune(message.NewPrinter(tag).Sprintf("%.1f", 1234.5))

	// "1234.5" without grouping, "1,234.5" with it
	s := separators{decimal: string(r[len(r)-2])}
	if len(r) > 6 {
		s.group = string(r[1])
	}

	return s
}

// CurrencySymbol returns the symbol for Currency.
func CurrencySymbol() string {
	return fmt.Sprintf("%s", currency.Symbol(Currency))
}

// FormatAmount formats the amount with two decimals in the format of the
// locale, followed by the currency symbol, e.g. "1234,50 €".
func FormatAmount(amount decimal.Decimal, tag language.Tag) string {
	s := separatorsFor(tag)
	return strings.Replace(amount.StringFixed(2), ".", s.decimal, 1) + " " + CurrencySymbol()
}

// ParseAmount parses an amount written in the format of the locale. A
// currency symbol and grouping separators are ignored.
func ParseAmount(s string, tag language.Tag) (decimal.Decimal, error) {
	sep := separatorsFor(tag)

	v := strings.TrimSpace(strings.ReplaceAll(s, CurrencySymbol(), ""))
	if sep.group != "" {
		v = strings.ReplaceAll(v, sep.group, "")
	}
	v = strings.Replace(v, sep.decimal, ".", 1)

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountInvalid, s)
	}

	return d, nil
}

// Tag returns the best match for an Accept-Language header. The default
// is German.
func Tag(acceptLanguage string) language.Tag {
	matcher := language.NewMatcher([]language.Tag{language.German, language.English, language.French, language.Italian})

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.German
	}

	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	return language.Make(base.String())
}
