package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errInvalidPatterns = errors.New("the catalog contains invalid message patterns")

func validateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <user>",
		Short: "Validate the budget catalog of a user",
		Long: `Validate the budget catalog of a user and print its budgets with the
effective message pattern.

Fails if the catalog does not exist, is malformed or contains invalid
message patterns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := v.GetString("budget_dir")
			source := budget.NewDirSource(dir)

			r, err := source.Open(cmd.Context(), args[0])
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("there is no budget catalog for %s in %s", args[0], dir)
			}
			if err != nil {
				return err
			}
			defer r.Close()

			catalog, err := budget.ParseCatalog(r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, def := range catalog.Definitions() {
				name := def.Name
				if def.Fallback {
					name += " (fallback)"
				}
				fmt.Fprintln(out, name)

				pattern := budget.CompilePattern(def.Regex())
				if pattern.Err() != nil {
					invalid++
					fmt.Fprintf(out, "  regex: %s INVALID: %v\n", pattern, pattern.Err())
				} else {
					fmt.Fprintf(out, "  regex: %s\n", pattern)
				}

				if len(def.Shops) > 0 {
					fmt.Fprintf(out, "  shops: %s\n", strings.Join(def.Shops, ", "))
				}

				if def.HasCap() {
					fmt.Fprintf(out, "  amount: %s\n", def.MonthlyCap.Decimal.StringFixed(2))
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidPatterns, invalid, catalog.Len())
			}

			return nil
		},
	}
}
