// Command budgets inspects the budget catalogs of users.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Inspect budget catalogs",
		Long: `Inspect the budget catalogs of users.

Catalogs are read from <budget-dir>/<user>.json. The directory can also be
set with the BUDGET_DIR environment variable.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if v.GetBool("verbose") {
				level = zerolog.DebugLevel
			}

			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().String("budget-dir", "", "directory of the budget catalogs (default \"data/budgets\")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")

	_ = v.BindPFlag("budget_dir", cmd.PersistentFlags().Lookup("budget-dir"))
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindEnv("budget_dir", "BUDGET_DIR")
	v.SetDefault("budget_dir", filepath.Join("data", "budgets"))

	cmd.AddCommand(validateCmd(v))
	cmd.AddCommand(matchCmd(v))

	return cmd
}
