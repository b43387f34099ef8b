package report

import (
	"math"

	"github.com/dustin/go-humanize"
)

// brlPattern groups thousands with dots and uses a decimal comma.
const brlPattern = "#.###,##"

// FormatBRL renders an amount as Brazilian reais, e.g. "R$ 1.234.567,89".
func FormatBRL(v float64) string {
	return "R$ " + FormatNumber(v)
}

// FormatNumber renders v with two decimals in the Brazilian convention.
func FormatNumber(v float64) string {
	if v == 0 || math.Abs(v) < 0.005 {
		// avoid "-0,00" for tiny negative residuals
		v = 0
	}
	return humanize.FormatFloat(brlPattern, v)
}

// FormatPercent renders a decimal rate as a percentage, e.g. 0.105 -> "10,50%".
func FormatPercent(rate float64) string {
	return FormatNumber(rate*100) + "%"
}
