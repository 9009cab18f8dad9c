package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/internal/terminal"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run an interactive conversion session",
	Long: `Interactive reads commands from standard input: set the amount, pick
the source and target currencies, then convert or swap. After a result is
shown, swap re-runs the conversion with the currencies exchanged.`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().String("amount", "", "initial amount")
	interactiveCmd.Flags().String("from", "", "initial source currency")
	interactiveCmd.Flags().String("to", "", "initial target currency")

	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	colored, err := useColor(os.Stdout)
	if err != nil {
		return err
	}

	catalog := currency.Default()
	term := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout(), catalog, colored)

	amount, _ := cmd.Flags().GetString("amount")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	term.SetAmount(amount)
	if err := selectCurrencies(catalog, term, from, to); err != nil {
		return err
	}

	ctrl, err := newController(cfg, term)
	if err != nil {
		return err
	}
	ctrl.Bind(term)
	return term.Run(cmd.Context())
}
