package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/internal/terminal"
	"github.com/pdiddy/fx-convert/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one amount and print the result",
	Long: `Convert runs a single conversion. The result is printed as two lines:
the converted amount and the rate used. Validation and fetch errors are
printed in place of the result and make the command exit non-zero.`,
	Example: `  fx-convert convert --amount 10 --from USD --to EUR`,
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().String("amount", "", "amount to convert")
	convertCmd.Flags().String("from", "", "source currency code")
	convertCmd.Flags().String("to", "", "target currency code")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	colored, err := useColor(os.Stdout)
	if err != nil {
		return err
	}

	catalog := currency.Default()
	amount, _ := cmd.Flags().GetString("amount")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	term := terminal.New(nil, cmd.OutOrStdout(), catalog, colored)
	term.SetAmount(amount)
	if err := selectCurrencies(catalog, term, from, to); err != nil {
		return err
	}

	ctrl, err := newController(cfg, term)
	if err != nil {
		return err
	}
	if state := ctrl.ConvertCurrency(cmd.Context()); state.Kind != types.DisplaySuccess {
		return fmt.Errorf("conversion failed")
	}
	return nil
}

// selectCurrencies preselects the from/to fields. Empty codes leave the
// field unselected; codes outside the catalog are rejected.
func selectCurrencies(catalog *currency.Catalog, term *terminal.Terminal, from, to string) error {
	for _, sel := range []struct {
		code string
		set  func(string)
	}{{from, term.SetFromCurrency}, {to, term.SetToCurrency}} {
		if sel.code == "" {
			continue
		}
		cur, ok := catalog.Lookup(sel.code)
		if !ok {
			return fmt.Errorf("unknown currency %q (see: fx-convert currencies)", sel.code)
		}
		sel.set(cur.Code)
	}
	return nil
}
