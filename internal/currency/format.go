// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package currency

import (
	"fmt"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display selects how an amount is tagged with its currency.
type Display string

const (
	// DisplayCode prefixes the ISO code: "EUR 9.20".
	DisplayCode Display = "code"
	// DisplaySymbol prefixes the CLDR symbol for the locale: "€ 9.20".
	DisplaySymbol Display = "symbol"
)

// Formatter renders amounts for a single locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	display Display
}

// NewFormatter parses locale as a BCP 47 tag.
func NewFormatter(locale string, display Display) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	switch display {
	case "":
		display = DisplayCode
	case DisplayCode, DisplaySymbol:
	default:
		return nil, fmt.Errorf("unknown currency display %q", display)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag), display: display}, nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Amount formats v in currency code: grouping and decimal separator follow
// the locale, the number of decimals follows the currency's standard
// rounding (2 for EUR, 0 for JPY). Codes unknown to CLDR use 2 decimals and
// are shown as given.
func (f *Formatter) Amount(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + f.printer.Sprint(number.Decimal(v, number.Scale(2)))
	}
	scale, _ := currency.Standard.Rounding(unit)
	return f.label(unit) + " " + f.printer.Sprint(number.Decimal(v, number.Scale(scale)))
}

func (f *Formatter) label(unit currency.Unit) string {
	if f.display == DisplaySymbol {
		if sym := f.printer.Sprint(currency.Symbol(unit)); sym != "" {
			return sym
		}
	}
	return unit.String()
}

// Rate formats an exchange rate with exactly four decimals, independent of
// locale.
func Rate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 4, 64)
}
