package schedule

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

// labeled is implemented by every contract enum.
type labeled interface {
	~string
	Label() string
}

// parseLabeled accepts the enum value ("FIRM_FIXED_PRICE"), its label ("FFP")
// or the value written with spaces ("Firm Fixed Price").
func parseLabeled[T labeled](raw string, values []T) (T, bool) {
	s := strings.TrimSpace(raw)
	spaced := strings.NewReplacer(" ", "_", "-", "_").Replace(s)

	for _, v := range values {
		if strings.EqualFold(s, string(v)) || strings.EqualFold(s, v.Label()) || strings.EqualFold(spaced, string(v)) {
			return v, true
		}
	}

	var zero T

	return zero, false
}

// parseRows turns the data rows below the header into CLIN params. Rows are
// numbered from 1 in the order they are kept so errors line up with the
// numbering used when the import is validated.
func parseRows(cols colIndex, rows [][]string) ([]contract.ClinParams, error) {
	var (
		params []contract.ClinParams
		errs   = map[string]string{}
	)

	for _, row := range rows {
		number := cellValue(row, cols, fieldClinNumber)
		if number == "" || isFooter(number) {
			continue
		}

		rowNum := len(params) + 1
		prefix := fmt.Sprintf("row %d: ", rowNum)

		p := contract.ClinParams{
			ClinNumber:  number,
			Description: cellValue(row, cols, fieldDescription),
			ClinType:    contract.ClinTypeBase,
			PricingType: contract.PricingTypeFirmFixedPrice,
		}

		if s := cellValue(row, cols, fieldClinType); s != "" {
			t, ok := parseLabeled(s, contract.ClinTypeValues())
			if !ok {
				errs[prefix+"clin_type"] = fmt.Sprintf("unknown value %q", s)
			}

			p.ClinType = t
		}

		if s := cellValue(row, cols, fieldPricingType); s != "" {
			t, ok := parseLabeled(s, contract.PricingTypeValues())
			if !ok {
				errs[prefix+"pricing_type"] = fmt.Sprintf("unknown value %q", s)
			}

			p.PricingType = t
		}

		amounts := []struct {
			field field
			name  string
			dst   *decimal.NullDecimal
		}{
			{fieldTotalValue, "total_value", &p.TotalValue},
			{fieldFundedAmount, "funded_amount", &p.FundedAmount},
			{fieldInvoicedAmount, "invoiced_amount", &p.InvoicedAmount},
		}

		for _, a := range amounts {
			s := cellValue(row, cols, a.field)

			v, err := parseUSAmount(s)
			if err != nil {
				errs[prefix+a.name] = fmt.Sprintf("invalid amount %q", s)
				continue
			}

			*a.dst = v
		}

		params = append(params, p)
	}

	if len(errs) > 0 {
		return nil, &contract.ValidationError{Fields: errs}
	}

	return params, nil
}

func isFooter(number string) bool {
	n := strings.ToLower(number)

	return strings.HasPrefix(n, "total") || strings.HasPrefix(n, "page ")
}

func cellValue(row []string, cols colIndex, f field) string {
	idx, ok := cols[f]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
