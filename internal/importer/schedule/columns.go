package schedule

import (
	"strings"
	"unicode"
)

type field int

const (
	fieldClinNumber field = iota
	fieldDescription
	fieldClinType
	fieldPricingType
	fieldTotalValue
	fieldFundedAmount
	fieldInvoicedAmount
)

// aliases maps a normalized header cell to the field it holds. Normalizing
// drops case, spaces and punctuation, so "CLIN #", "clin_number" and
// "CLIN Number" all land on the same key.
var aliases = map[string]field{
	"clin":           fieldClinNumber,
	"clinno":         fieldClinNumber,
	"clinnumber":     fieldClinNumber,
	"lineitem":       fieldClinNumber,
	"itemno":         fieldClinNumber,
	"description":    fieldDescription,
	"title":          fieldDescription,
	"supplies":       fieldDescription,
	"type":           fieldClinType,
	"clintype":       fieldClinType,
	"pricing":        fieldPricingType,
	"pricingtype":    fieldPricingType,
	"contracttype":   fieldPricingType,
	"totalvalue":     fieldTotalValue,
	"value":          fieldTotalValue,
	"amount":         fieldTotalValue,
	"ceiling":        fieldTotalValue,
	"funded":         fieldFundedAmount,
	"fundedamount":   fieldFundedAmount,
	"funding":        fieldFundedAmount,
	"obligated":      fieldFundedAmount,
	"invoiced":       fieldInvoicedAmount,
	"invoicedamount": fieldInvoicedAmount,
	"billed":         fieldInvoicedAmount,
	"expended":       fieldInvoicedAmount,
}

// minHeaderFields is how many known columns a row needs, CLIN number
// included, before it is taken as the header.
const minHeaderFields = 2

type colIndex map[field]int

func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// detectHeader scans rows for the first one that names the CLIN number
// column plus at least one other known column.
func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			f, ok := aliases[normalizeHeader(cell)]
			if !ok {
				continue
			}

			if _, seen := cols[f]; !seen {
				cols[f] = i
			}
		}

		if _, ok := cols[fieldClinNumber]; ok && len(cols) >= minHeaderFields {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}
