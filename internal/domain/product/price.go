// internal/domain/product/price.go
package product

import (
	"strconv"
	"strings"
)

// ParsePrice extracts the numeric value from a currency-formatted display
// string. Everything except digits, the decimal point and the minus sign is
// stripped, so "$1,234.56" parses to 1234.56 and "-$5.00" to -5.
// Unparseable input yields 0.
func ParsePrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
