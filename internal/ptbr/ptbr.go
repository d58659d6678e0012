// Package ptbr formats numbers for the dashboard's fixed pt-BR locale.
// Answer text and chart labels always use one decimal place, comma as the
// decimal separator and dot as the thousands separator.
package ptbr

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Decimal renders v with exactly one fraction digit, e.g. 1580.3 -> "1.580,3".
func Decimal(v float64) string {
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
}

// Percent renders v as a one-decimal percentage, e.g. 26.1 -> "26,1%".
// The value is already a percentage, not a fraction.
func Percent(v float64) string {
	return Decimal(v) + "%"
}

// Billions renders a spending value, e.g. 913.4 -> "R$ 913,4 bilhões".
func Billions(v float64) string {
	return fmt.Sprintf("R$ %s bilhões", Decimal(v))
}

// Trillions renders a debt stock value, e.g. 7.8 -> "R$ 7,8 trilhões".
func Trillions(v float64) string {
	return fmt.Sprintf("R$ %s trilhões", Decimal(v))
}
