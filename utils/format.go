// utils/format.go - Display formatting helpers
package utils

import (
	"strconv"
	"strings"
)

// FormatMoney renders a monetary amount in Brazilian real notation:
// R$ 1.234,56. Used for display fields only; amounts stay numeric in
// stored documents.
func FormatMoney(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("R$ ")

	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}
