package contract_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestSumClins(t *testing.T) {
	type testCase struct {
		name         string
		clins        []*contract.Clin
		wantTotal    string
		wantFunded   string
		wantInvoiced string
	}

	tests := []testCase{
		{
			name:         "Empty",
			clins:        nil,
			wantTotal:    "0",
			wantFunded:   "0",
			wantInvoiced: "0",
		},
		{
			name: "FundedAndInvoiced",
			clins: []*contract.Clin{
				{FundedAmount: money("100"), InvoicedAmount: money("40")},
				{FundedAmount: money("200"), InvoicedAmount: money("190")},
			},
			wantTotal:    "0",
			wantFunded:   "300",
			wantInvoiced: "230",
		},
		{
			name: "NullsCountAsZero",
			clins: []*contract.Clin{
				{TotalValue: money("500.50"), FundedAmount: money("250")},
				{TotalValue: decimal.NullDecimal{}, InvoicedAmount: money("10.25")},
				{},
			},
			wantTotal:    "500.5",
			wantFunded:   "250",
			wantInvoiced: "10.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contract.SumClins(tt.clins)

			assert.Equal(t, tt.wantTotal, got.TotalValue.String())
			assert.Equal(t, tt.wantFunded, got.FundedAmount.String())
			assert.Equal(t, tt.wantInvoiced, got.InvoicedAmount.String())
		})
	}
}

func TestSumClins_NonNegativeFunding(t *testing.T) {
	clins := make([]*contract.Clin, 0, 50)
	for i := range 50 {
		var funded decimal.NullDecimal
		if i%3 != 0 {
			funded = decimal.NewNullDecimal(decimal.NewFromInt(int64(i * 1000)))
		}

		clins = append(clins, &contract.Clin{FundedAmount: funded})
	}

	got := contract.SumClins(clins)
	assert.False(t, got.FundedAmount.IsNegative())
}

func TestFundingPercentage(t *testing.T) {
	type testCase struct {
		name   string
		funded string
		total  string
		want   float64
	}

	tests := []testCase{
		{name: "ZeroTotalZeroFunded", funded: "0", total: "0", want: 0},
		{name: "ZeroTotalWithFunding", funded: "1500", total: "0", want: 0},
		{name: "Half", funded: "500000", total: "1000000", want: 50},
		{name: "Overfunded", funded: "150", total: "100", want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contract.FundingPercentage(decimal.RequireFromString(tt.funded), decimal.RequireFromString(tt.total))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestBurnRate(t *testing.T) {
	t.Run("ScenarioFromClins", func(t *testing.T) {
		totals := contract.SumClins([]*contract.Clin{
			{FundedAmount: money("100"), InvoicedAmount: money("40")},
			{FundedAmount: money("200"), InvoicedAmount: money("190")},
		})

		got := contract.BurnRate(totals.InvoicedAmount, totals.FundedAmount)
		assert.InDelta(t, 76.7, got, 0.05)
		assert.Equal(t, "76.7%", contract.FormatPercent(got))
	})

	t.Run("ZeroFunded", func(t *testing.T) {
		assert.Zero(t, contract.BurnRate(decimal.NewFromInt(40), decimal.Zero))
	})
}

func TestRemainingFunds(t *testing.T) {
	assert.False(t, contract.RemainingFunds(decimal.NullDecimal{}, decimal.NullDecimal{}).Valid)

	got := contract.RemainingFunds(money("100"), decimal.NullDecimal{})
	require.True(t, got.Valid)
	assert.Equal(t, "100", got.Decimal.String())

	got = contract.RemainingFunds(money("100"), money("130"))
	require.True(t, got.Valid)
	assert.Equal(t, "-30", got.Decimal.String())
}

func TestNetChange(t *testing.T) {
	mods := []*contract.Modification{
		{Status: contract.ModificationStatusExecuted, ValueChange: money("1000"), FundingChange: money("250")},
		{Status: contract.ModificationStatusExecuted, ValueChange: money("-200")},
		{Status: contract.ModificationStatusApproved, ValueChange: money("99999"), FundingChange: money("99999")},
	}

	value, funding := contract.NetChange(mods)
	assert.Equal(t, "800", value.String())
	assert.Equal(t, "250", funding.String())
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	inThreeDays := now.AddDate(0, 0, 3)
	nextMonth := now.AddDate(0, 1, 0)
	popEnd := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	c := &contract.Contract{
		ID:             uuid.New(),
		ContractNumber: "W911NF-25-C-0001",
		Title:          "Sensor Integration",
		Status:         contract.ContractStatusActive,
		TotalValue:     decimal.NewFromInt(1000000),
		FundedValue:    decimal.NewFromInt(250000),
		PopEndDate:     &popEnd,
	}

	clins := []*contract.Clin{
		{FundedAmount: money("100"), InvoicedAmount: money("40")},
		{FundedAmount: money("200"), InvoicedAmount: money("190")},
	}

	mods := []*contract.Modification{
		{Status: contract.ModificationStatusDraft, ModificationType: contract.ModificationTypeFunding},
		{Status: contract.ModificationStatusApproved, ModificationType: contract.ModificationTypeOptionExercise},
		{Status: contract.ModificationStatusUnderReview, ModificationType: contract.ModificationTypeOptionExercise},
		{Status: contract.ModificationStatusExecuted, ModificationType: contract.ModificationTypeOptionExercise, ValueChange: money("5000")},
		{Status: contract.ModificationStatusRejected, ModificationType: contract.ModificationTypeScopeChange},
	}

	deliverables := []*contract.Deliverable{
		{Status: contract.DeliverableStatusInProgress, DueDate: &yesterday},
		{Status: contract.DeliverableStatusAccepted, DueDate: &yesterday},
		{Status: contract.DeliverableStatusPending, DueDate: &inThreeDays},
		{Status: contract.DeliverableStatusPending, DueDate: &nextMonth},
		{Status: contract.DeliverableStatusPending},
	}

	s := contract.Summarize(c, clins, mods, deliverables, now, contract.DefaultDueSoonWindow)

	assert.Equal(t, c.ID, s.ContractID)
	assert.InDelta(t, 25.0, s.FundingPercentage, 0.0001)
	assert.Equal(t, 2, s.ClinCount)
	assert.Equal(t, "300", s.ClinFundedAmount.String())
	assert.Equal(t, "230", s.ClinInvoicedAmount.String())
	assert.Equal(t, "70", s.RemainingFunds.String())
	assert.InDelta(t, 76.7, s.BurnRate, 0.05)

	assert.Equal(t, 5, s.ModificationCount)
	assert.Equal(t, 3, s.PendingModifications)
	assert.Equal(t, 2, s.PendingOptions)
	assert.Equal(t, 1, s.ExecutedModifications)
	assert.Equal(t, "5000", s.ExecutedValueChange.String())

	assert.Equal(t, 5, s.DeliverableCount)
	assert.Equal(t, 1, s.OverdueDeliverables)
	assert.Equal(t, 1, s.DueSoonDeliverables)

	require.NotNil(t, s.PopDaysRemaining)
	assert.Equal(t, 10, *s.PopDaysRemaining)
}

func TestSummarize_EmptyContract(t *testing.T) {
	c := &contract.Contract{ID: uuid.New()}

	s := contract.Summarize(c, nil, nil, nil, time.Now(), contract.DefaultDueSoonWindow)

	assert.Zero(t, s.FundingPercentage)
	assert.Zero(t, s.BurnRate)
	assert.True(t, s.RemainingFunds.IsZero())
	assert.Nil(t, s.PopDaysRemaining)
}

func TestSummarize_PopEnded(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	c := &contract.Contract{ID: uuid.New(), PopEndDate: new(now.AddDate(0, -2, 0))}

	s := contract.Summarize(c, nil, nil, nil, now, contract.DefaultDueSoonWindow)

	require.NotNil(t, s.PopDaysRemaining)
	assert.Zero(t, *s.PopDaysRemaining)
}
