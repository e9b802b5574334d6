package wizard

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	printer = message.NewPrinter(language.English)

	// Larger integer parts are printed without grouping.
	maxGrouped = decimal.NewFromInt(math.MaxInt64)
)

// FormatAmount renders an amount with thousands separators and two
// decimals, prefixed with the ISO currency code when one is given.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	rounded := amount.Round(2)

	s := formatFixed(rounded.Abs())
	if rounded.IsNegative() {
		s = "-" + s
	}

	if currencyCode == "" {
		return s
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return s
	}

	return unit.String() + " " + s
}

// formatFixed prints a non-negative amount with two decimals. Only the
// integer part goes through the printer so that no digits are lost to
// floating point.
func formatFixed(amount decimal.Decimal) string {
	integer, fraction, _ := strings.Cut(amount.StringFixed(2), ".")

	whole := amount.Truncate(0)
	if whole.LessThanOrEqual(maxGrouped) {
		integer = printer.Sprintf("%v", number.Decimal(whole.IntPart()))
	}

	return integer + "." + fraction
}
