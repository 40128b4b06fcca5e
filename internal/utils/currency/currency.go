// Package currency formats displayed prices as Chilean pesos.
//
// There are two distinct entry points and they are not interchangeable:
// FormatCLP formats an amount already denominated in pesos, while
// FormatUSDToCLP first applies the fixed USD conversion rate. Screens
// that show remote catalog prices (stored in USD) use the latter.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// clpPerUSD is the fixed conversion rate applied by FormatUSDToCLP.
const clpPerUSD = 970

var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders an amount as an es-CL currency string with no
// decimal places, e.g. FormatCLP(12345) == "$12.345".
func FormatCLP(amount float64) string {
	return printer.Sprintf("$%d", int64(math.Round(amount)))
}

// FormatUSDToCLP converts a USD amount at the fixed rate and formats
// the result as pesos.
func FormatUSDToCLP(amount float64) string {
	return FormatCLP(amount * clpPerUSD)
}
