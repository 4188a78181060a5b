package footprint

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatTonnes formats an annual footprint value for display, e.g.
// "4.56 tonnes CO2e/yr".
func FormatTonnes(v float64) string {
	return fmt.Sprintf("%.2f tonnes CO2e/yr", Round2(v))
}

// FormatKg formats a kilogram quantity with thousand separators, e.g.
// "2,500 kg CO2e".
func FormatKg(v float64) string {
	return fmt.Sprintf("%s kg CO2e", FormatNumber(int64(math.Round(v))))
}

// FormatDelta formats a signed difference against a reference value, e.g.
// "+1.20" or "-0.80".
func FormatDelta(v float64) string {
	return fmt.Sprintf("%+.2f", Round2(v))
}
