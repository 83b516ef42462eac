package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// orZero is the single place where a missing amount becomes zero.
func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}

	return v.Decimal
}

// ClinTotals is the sum of every money column over a contract's CLINs.
type ClinTotals struct {
	TotalValue     decimal.Decimal
	FundedAmount   decimal.Decimal
	InvoicedAmount decimal.Decimal
	RemainingFunds decimal.Decimal
}

func SumClins(clins []*Clin) ClinTotals {
	var t ClinTotals

	for _, c := range clins {
		t.TotalValue = t.TotalValue.Add(orZero(c.TotalValue))
		t.FundedAmount = t.FundedAmount.Add(orZero(c.FundedAmount))
		t.InvoicedAmount = t.InvoicedAmount.Add(orZero(c.InvoicedAmount))
		t.RemainingFunds = t.RemainingFunds.Add(orZero(c.RemainingFunds))
	}

	return t
}

// FundingPercentage is funded / total * 100, or 0 when total is zero.
func FundingPercentage(funded, total decimal.Decimal) float64 {
	return percentOf(funded, total)
}

// BurnRate is invoiced / funded * 100, or 0 when funded is zero.
func BurnRate(invoiced, funded decimal.Decimal) float64 {
	return percentOf(invoiced, funded)
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}

	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// RemainingFunds derives funded - invoiced for a CLIN. It stays null only
// when neither amount is known.
func RemainingFunds(funded, invoiced decimal.NullDecimal) decimal.NullDecimal {
	if !funded.Valid && !invoiced.Valid {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(orZero(funded).Sub(orZero(invoiced)))
}

// NetChange rolls up value and funding deltas of executed modifications.
func NetChange(mods []*Modification) (value, funding decimal.Decimal) {
	for _, m := range mods {
		if m.Status != ModificationStatusExecuted {
			continue
		}

		value = value.Add(orZero(m.ValueChange))
		funding = funding.Add(orZero(m.FundingChange))
	}

	return value, funding
}

// Summary is the read-only rollup of a contract and its children. It is
// recomputed on every fetch and never stored.
type Summary struct {
	ContractID        uuid.UUID
	ContractNumber    string
	Title             string
	Status            ContractStatus
	TotalValue        decimal.Decimal
	FundedValue       decimal.Decimal
	FundingPercentage float64

	ClinCount          int
	ClinTotalValue     decimal.Decimal
	ClinFundedAmount   decimal.Decimal
	ClinInvoicedAmount decimal.Decimal
	RemainingFunds     decimal.Decimal
	BurnRate           float64

	ModificationCount     int
	PendingModifications  int
	PendingOptions        int
	ExecutedModifications int
	ExecutedValueChange   decimal.Decimal
	ExecutedFundingChange decimal.Decimal

	DeliverableCount    int
	OverdueDeliverables int
	DueSoonDeliverables int

	// PopDaysRemaining is nil when the contract has no PoP end date and
	// zero once the PoP has ended.
	PopDaysRemaining *int
}

func Summarize(
	c *Contract,
	clins []*Clin,
	mods []*Modification,
	deliverables []*Deliverable,
	now time.Time,
	window time.Duration,
) Summary {
	totals := SumClins(clins)
	valueChange, fundingChange := NetChange(mods)

	s := Summary{
		ContractID:        c.ID,
		ContractNumber:    c.ContractNumber,
		Title:             c.Title,
		Status:            c.Status,
		TotalValue:        c.TotalValue,
		FundedValue:       c.FundedValue,
		FundingPercentage: FundingPercentage(c.FundedValue, c.TotalValue),

		ClinCount:          len(clins),
		ClinTotalValue:     totals.TotalValue,
		ClinFundedAmount:   totals.FundedAmount,
		ClinInvoicedAmount: totals.InvoicedAmount,
		RemainingFunds:     totals.FundedAmount.Sub(totals.InvoicedAmount),
		BurnRate:           BurnRate(totals.InvoicedAmount, totals.FundedAmount),

		ModificationCount:     len(mods),
		ExecutedValueChange:   valueChange,
		ExecutedFundingChange: fundingChange,

		DeliverableCount: len(deliverables),
		PopDaysRemaining: popDaysRemaining(c.PopEndDate, now),
	}

	for _, m := range mods {
		switch {
		case m.Status.Pending():
			s.PendingModifications++

			if m.ModificationType == ModificationTypeOptionExercise {
				s.PendingOptions++
			}
		case m.Status == ModificationStatusExecuted:
			s.ExecutedModifications++
		}
	}

	for _, d := range deliverables {
		switch {
		case IsOverdue(d, now):
			s.OverdueDeliverables++
		case IsDueSoon(d, now, window):
			s.DueSoonDeliverables++
		}
	}

	return s
}

func popDaysRemaining(end *time.Time, now time.Time) *int {
	if end == nil {
		return nil
	}

	days := int(truncateDay(*end).Sub(truncateDay(now)).Hours() / 24)

	return new(max(days, 0))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
