package v1

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/envelope-zero/expenses/internal/report"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Amount is the amount of an expense in a request body. It is either a JSON
// number or a string in the format of the request locale, e.g. "3,49 €".
type Amount struct {
	value  string
	locale bool
}

// AmountOf returns the amount for a number.
func AmountOf(d decimal.Decimal) Amount {
	return Amount{value: d.String()}
}

// LocaleAmount returns the amount for a string in the format of the
// request locale.
func LocaleAmount(s string) Amount {
	return Amount{value: s, locale: true}
}

// IsZero reports whether the amount is unset.
func (a Amount) IsZero() bool {
	return a.value == ""
}

// Decimal parses the amount. Strings are parsed in the format of the locale.
func (a Amount) Decimal(tag language.Tag) (decimal.Decimal, error) {
	if a.IsZero() {
		return decimal.Zero, errAmountMissing
	}

	if a.locale {
		return report.ParseAmount(a.value, tag)
	}

	d, err := decimal.NewFromString(a.value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", report.ErrAmountInvalid, a.value)
	}

	return d, nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}

	if a.locale {
		return json.Marshal(a.value)
	}

	return []byte(a.value), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*a = LocaleAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", report.ErrAmountInvalid, data)
	}

	*a = Amount{value: n.String()}
	return nil
}
