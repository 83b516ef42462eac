package contract

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	notAvailable = "N/A"
	dateLayout   = "Jan 2, 2006"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole US dollars with thousands grouping.
// A nil amount renders as "N/A".
func FormatCurrency(v *decimal.Decimal) string {
	if v == nil {
		return notAvailable
	}

	whole := v.Round(0)
	if whole.IsNegative() {
		return "-$" + usd.Sprintf("%d", whole.Neg().IntPart())
	}

	return "$" + usd.Sprintf("%d", whole.IntPart())
}

func FormatNullCurrency(v decimal.NullDecimal) string {
	if !v.Valid {
		return notAvailable
	}

	return FormatCurrency(&v.Decimal)
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return notAvailable
	}

	return t.Format(dateLayout)
}

// FormatPercent renders a percentage with one decimal place, e.g. "76.7%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
