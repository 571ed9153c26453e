package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/envelope-zero/expenses/internal/types"
	"golang.org/x/text/language"
)

// DateFormat is the format of the date column in CSV exports.
const DateFormat = "02.01.2006 15:04"

var csvHeader = []string{"Date", "Description", "Category", "Amount"}

// Filename returns the name of the CSV export for the month.
func Filename(m types.Month) string {
	return fmt.Sprintf("expenses_%02d-%04d.csv", int(m.Month()), m.Year())
}

// Description is the message of the expense followed by the shop in
// parentheses.
func Description(e budget.Expense) string {
	if e.Shop == "" {
		return e.Message
	}

	if e.Message == "" {
		return fmt.Sprintf("(%s)", e.Shop)
	}

	return fmt.Sprintf("%s (%s)", e.Message, e.Shop)
}

// WriteCSV writes the expenses as CSV. The category of each expense is the
// budget it is assigned to, or empty.
func WriteCSV(ctx context.Context, w io.Writer, engine *budget.Engine, user string, expenses []budget.Expense, loc *time.Location, tag language.Tag) error {
	catalog, err := engine.Catalog(ctx, user)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range expenses {
		category, _ := budget.BudgetName(catalog, e)

		err := cw.Write([]string{
			e.Timestamp.In(loc).Format(DateFormat),
			Description(e),
			category,
			FormatAmount(e.Amount, tag),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
