package main

import (
	"fmt"

	"github.com/envelope-zero/expenses/internal/budget"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func matchCmd(v *viper.Viper) *cobra.Command {
	var e budget.Expense

	cmd := &cobra.Command{
		Use:   "match <user>",
		Short: "Print the budget an expense belongs to",
		Long: `Print the name of the first budget in the catalog of the user that an
expense with the given shop, message and budget belongs to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := budget.NewLoader(budget.NewDirSource(v.GetString("budget_dir")), budget.NewMemoryCache())

			name, ok, err := budget.NewEngine(loader).FindBudgetName(cmd.Context(), args[0], e)
			if err != nil {
				return err
			}

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no budget matches")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&e.Shop, "shop", "", "shop of the expense")
	cmd.Flags().StringVar(&e.Message, "message", "", "message of the expense")
	cmd.Flags().StringVar(&e.Budget, "budget", "", "explicitly chosen budget of the expense")

	return cmd
}
