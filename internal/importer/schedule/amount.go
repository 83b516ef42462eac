package schedule

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseUSAmount parses a US-formatted dollar amount. Empty cells and "N/A"
// are null. Examples: "$1,234.50", "1234.5", "(500.00)" for -500.
func parseUSAmount(s string) (decimal.NullDecimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" || clean == "-" || strings.EqualFold(clean, "n/a") {
		return decimal.NullDecimal{}, nil
	}

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	clean = strings.NewReplacer("$", "", ",", "", " ", "", "USD", "").Replace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	if negative {
		d = d.Neg()
	}

	return decimal.NewNullDecimal(d), nil
}
