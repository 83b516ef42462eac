package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

func TestIsOverdue_IsDueSoon(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	window := contract.DefaultDueSoonWindow

	type testCase struct {
		name        string
		status      contract.DeliverableStatus
		due         *time.Time
		wantOverdue bool
		wantDueSoon bool
	}

	tests := []testCase{
		{
			name:        "YesterdayInProgress",
			status:      contract.DeliverableStatusInProgress,
			due:         new(now.AddDate(0, 0, -1)),
			wantOverdue: true,
			wantDueSoon: false,
		},
		{
			name:   "YesterdayAccepted",
			status: contract.DeliverableStatusAccepted,
			due:    new(now.AddDate(0, 0, -1)),
		},
		{
			name:   "YesterdayWaived",
			status: contract.DeliverableStatusWaived,
			due:    new(now.AddDate(0, 0, -1)),
		},
		{
			name:        "InThreeDays",
			status:      contract.DeliverableStatusPending,
			due:         new(now.AddDate(0, 0, 3)),
			wantDueSoon: true,
		},
		{
			name:        "AtWindowEdge",
			status:      contract.DeliverableStatusPending,
			due:         new(now.Add(window)),
			wantDueSoon: true,
		},
		{
			name:   "BeyondWindow",
			status: contract.DeliverableStatusPending,
			due:    new(now.Add(window).AddDate(0, 0, 1)),
		},
		{
			name:        "DueTodayAsStoredDate",
			status:      contract.DeliverableStatusInProgress,
			due:         new(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
			wantDueSoon: true,
		},
		{
			name:        "DueEarlierToday",
			status:      contract.DeliverableStatusPending,
			due:         new(now.Add(-time.Hour)),
			wantDueSoon: true,
		},
		{
			name:   "AcceptedDueSoon",
			status: contract.DeliverableStatusAccepted,
			due:    new(now.AddDate(0, 0, 2)),
		},
		{
			name:   "NoDueDate",
			status: contract.DeliverableStatusPending,
		},
		{
			name:        "SubmittedButLate",
			status:      contract.DeliverableStatusSubmitted,
			due:         new(now.AddDate(0, 0, -1)),
			wantOverdue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &contract.Deliverable{Status: tt.status, DueDate: tt.due}

			assert.Equal(t, tt.wantOverdue, contract.IsOverdue(d, now))
			assert.Equal(t, tt.wantDueSoon, contract.IsDueSoon(d, now, window))
		})
	}
}

func TestDeliverableFlags_MutuallyExclusive(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range contract.DeliverableStatusValues() {
		for offset := -10; offset <= 10; offset++ {
			d := &contract.Deliverable{Status: status, DueDate: new(now.AddDate(0, 0, offset))}

			overdue := contract.IsOverdue(d, now)
			dueSoon := contract.IsDueSoon(d, now, contract.DefaultDueSoonWindow)

			assert.False(t, overdue && dueSoon, "status %s offset %d", status, offset)

			if status.Closed() {
				assert.False(t, overdue, "status %s offset %d", status, offset)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	overdue := &contract.Deliverable{Title: "overdue", Status: contract.DeliverableStatusPending, DueDate: new(now.AddDate(0, 0, -2))}
	dueSoon := &contract.Deliverable{Title: "due soon", Status: contract.DeliverableStatusInProgress, DueDate: new(now.AddDate(0, 0, 1))}
	working := &contract.Deliverable{Title: "working", Status: contract.DeliverableStatusInProgress, DueDate: new(now.AddDate(0, 1, 0))}
	review := &contract.Deliverable{Title: "review", Status: contract.DeliverableStatusUnderReview, DueDate: new(now.AddDate(0, 1, 0))}
	accepted := &contract.Deliverable{Title: "accepted", Status: contract.DeliverableStatusAccepted, DueDate: new(now.AddDate(0, 0, -5))}
	later := &contract.Deliverable{Title: "later", Status: contract.DeliverableStatusPending, DueDate: new(now.AddDate(0, 2, 0))}
	undated := &contract.Deliverable{Title: "undated", Status: contract.DeliverableStatusPending}

	b := contract.Classify([]*contract.Deliverable{undated, later, accepted, review, working, dueSoon, overdue}, now, contract.DefaultDueSoonWindow)

	assert.Equal(t, []*contract.Deliverable{overdue}, b.Overdue)
	assert.Equal(t, []*contract.Deliverable{dueSoon}, b.DueSoon)
	assert.Equal(t, []*contract.Deliverable{working}, b.InProgress)
	assert.Equal(t, []*contract.Deliverable{review}, b.Submitted)
	assert.Equal(t, []*contract.Deliverable{accepted}, b.Accepted)
	assert.Equal(t, []*contract.Deliverable{later, undated}, b.Upcoming)
}

func TestSortUpcoming(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := &contract.Deliverable{Title: "a"}
	b := &contract.Deliverable{Title: "b", DueDate: new(base.AddDate(0, 0, 5))}
	c := &contract.Deliverable{Title: "c"}
	d := &contract.Deliverable{Title: "d", DueDate: new(base.AddDate(0, 0, 1))}
	e := &contract.Deliverable{Title: "e", DueDate: new(base.AddDate(0, 0, 5))}

	input := []*contract.Deliverable{a, b, c, d, e}
	got := contract.SortUpcoming(input)

	require.Len(t, got, 5)
	assert.Equal(t, []*contract.Deliverable{d, b, e, a, c}, got)
	assert.Equal(t, []*contract.Deliverable{a, b, c, d, e}, input, "input must not be reordered")
}
