package insights

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders v as US dollars with thousands separators and two
// decimals, e.g. "$138,271.15".
func FormatCurrency(v float64) string {
	return message.NewPrinter(language.English).Sprintf("$%.2f", v)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(v int) string {
	return message.NewPrinter(language.English).Sprintf("%d", v)
}

// FormatPercent renders a share with one decimal.
func FormatPercent(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f%%", v)
}

// FormatCompact renders v with one decimal and a k, M or B suffix, e.g.
// "204.2k", for labels under chart columns.
func FormatCompact(v float64) string {
	p := message.NewPrinter(language.English)
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return p.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return p.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return p.Sprintf("%.1fk", v/1e3)
	}
	return p.Sprintf("%.0f", v)
}
