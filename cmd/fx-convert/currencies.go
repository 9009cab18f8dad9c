package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fx-convert/internal/currency"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies that can be selected",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range currency.Default().All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", c.Code, c.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}
