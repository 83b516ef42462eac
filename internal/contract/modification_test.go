package contract_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

func TestCanExecute_OnlyApproved(t *testing.T) {
	for _, s := range contract.ModificationStatusValues() {
		assert.Equal(t, s == contract.ModificationStatusApproved, contract.CanExecute(s), "status %s", s)
	}
}

func TestCanExecute_Pending(t *testing.T) {
	assert.False(t, contract.CanExecute(contract.ModificationStatusPending))
}

func TestCanTransition(t *testing.T) {
	type testCase struct {
		name string
		from contract.ModificationStatus
		to   contract.ModificationStatus
		want bool
	}

	tests := []testCase{
		{name: "DraftToPending", from: contract.ModificationStatusDraft, to: contract.ModificationStatusPending, want: true},
		{name: "PendingToUnderReview", from: contract.ModificationStatusPending, to: contract.ModificationStatusUnderReview, want: true},
		{name: "UnderReviewToApproved", from: contract.ModificationStatusUnderReview, to: contract.ModificationStatusApproved, want: true},
		{name: "ApprovedToExecuted", from: contract.ModificationStatusApproved, to: contract.ModificationStatusExecuted, want: true},
		{name: "DraftToRejected", from: contract.ModificationStatusDraft, to: contract.ModificationStatusRejected, want: true},
		{name: "UnderReviewToCancelled", from: contract.ModificationStatusUnderReview, to: contract.ModificationStatusCancelled, want: true},
		{name: "PendingToExecuted", from: contract.ModificationStatusPending, to: contract.ModificationStatusExecuted, want: false},
		{name: "DraftToApproved", from: contract.ModificationStatusDraft, to: contract.ModificationStatusApproved, want: false},
		{name: "ApprovedToRejected", from: contract.ModificationStatusApproved, to: contract.ModificationStatusRejected, want: false},
		{name: "ExecutedToDraft", from: contract.ModificationStatusExecuted, to: contract.ModificationStatusDraft, want: false},
		{name: "RejectedToPending", from: contract.ModificationStatusRejected, to: contract.ModificationStatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contract.CanTransition(tt.from, tt.to))
		})
	}
}

func TestModificationStatus_TerminalHasNoExits(t *testing.T) {
	for _, s := range contract.ModificationStatusValues() {
		if s.Terminal() {
			assert.Empty(t, contract.NextStatuses(s), "status %s", s)
			assert.False(t, s.Pending(), "status %s", s)

			continue
		}

		assert.NotEmpty(t, contract.NextStatuses(s), "status %s", s)
		assert.True(t, s.Pending(), "status %s", s)
	}
}

func TestApplyExecution(t *testing.T) {
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	t.Run("FundingAndExtension", func(t *testing.T) {
		c := &contract.Contract{
			TotalValue:  decimal.NewFromInt(10000),
			FundedValue: decimal.NewFromInt(4000),
			PopEndDate:  &end,
		}
		m := &contract.Modification{
			ValueChange:      decimal.NewNullDecimal(decimal.NewFromInt(2500)),
			FundingChange:    decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			PopExtensionDays: new(90),
		}

		contract.ApplyExecution(c, m)

		assert.Equal(t, "12500", c.TotalValue.String())
		assert.Equal(t, "5000", c.FundedValue.String())
		assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), *c.PopEndDate)
		assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), end, "original date must not change")
	})

	t.Run("NewEndDateWins", func(t *testing.T) {
		newEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		c := &contract.Contract{PopEndDate: &end}

		contract.ApplyExecution(c, &contract.Modification{NewPopEndDate: &newEnd, PopExtensionDays: new(10)})

		assert.Equal(t, newEnd, *c.PopEndDate)
		assert.True(t, c.TotalValue.IsZero())
	})

	t.Run("NullDeltas", func(t *testing.T) {
		c := &contract.Contract{TotalValue: decimal.NewFromInt(7), FundedValue: decimal.NewFromInt(3)}

		contract.ApplyExecution(c, &contract.Modification{ModificationType: contract.ModificationTypeAdministrative})

		assert.Equal(t, "7", c.TotalValue.String())
		assert.Equal(t, "3", c.FundedValue.String())
		assert.Nil(t, c.PopEndDate)
	})
}
