package services

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHKD formats an amount as Hong Kong dollars with thousands
// separators and exactly 2 decimal places (e.g. HK$3,500.00).
func FormatHKD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	result := "HK$" + applyThousandsGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts a comma every 3 digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatFigure renders a computed figure to 2 decimal places.
func FormatFigure(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDimension returns a centimetre value with every significant digit
// and at least one decimal place, so 50 prints as "50.0" and 50.125 keeps
// its precision.
func FormatDimension(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
