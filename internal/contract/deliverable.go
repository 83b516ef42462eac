package contract

import (
	"slices"
	"time"
)

// DefaultDueSoonWindow is how far ahead of its due date a deliverable counts
// as due soon.
const DefaultDueSoonWindow = 7 * 24 * time.Hour

// Closed reports whether the deliverable no longer needs work.
func (s DeliverableStatus) Closed() bool {
	return s == DeliverableStatusAccepted || s == DeliverableStatusWaived
}

// IsOverdue reports whether an open deliverable's due day is before today.
// Due dates are calendar days, so a deliverable due today is not overdue.
func IsOverdue(d *Deliverable, now time.Time) bool {
	if d.DueDate == nil || d.Status.Closed() {
		return false
	}

	return truncateDay(*d.DueDate).Before(truncateDay(now))
}

// IsDueSoon reports whether an open deliverable falls due between today and
// the day window reaches. It is never true for an overdue deliverable.
func IsDueSoon(d *Deliverable, now time.Time, window time.Duration) bool {
	if d.DueDate == nil || d.Status.Closed() || IsOverdue(d, now) {
		return false
	}

	return !truncateDay(*d.DueDate).After(truncateDay(now.Add(window)))
}

// Board partitions deliverables into display groups. Every deliverable lands
// in exactly one group; overdue and due soon take precedence over status.
type Board struct {
	Overdue    []*Deliverable
	DueSoon    []*Deliverable
	InProgress []*Deliverable
	Submitted  []*Deliverable
	Accepted   []*Deliverable
	Upcoming   []*Deliverable
}

func Classify(ds []*Deliverable, now time.Time, window time.Duration) Board {
	var b Board

	for _, d := range SortUpcoming(ds) {
		switch {
		case IsOverdue(d, now):
			b.Overdue = append(b.Overdue, d)
		case IsDueSoon(d, now, window):
			b.DueSoon = append(b.DueSoon, d)
		case d.Status.Closed():
			b.Accepted = append(b.Accepted, d)
		case d.Status == DeliverableStatusInProgress:
			b.InProgress = append(b.InProgress, d)
		case d.Status == DeliverableStatusSubmitted, d.Status == DeliverableStatusUnderReview:
			b.Submitted = append(b.Submitted, d)
		default:
			b.Upcoming = append(b.Upcoming, d)
		}
	}

	return b
}

// SortUpcoming returns a copy ordered by due date ascending. Deliverables
// without a due date go last and keep their relative order.
func SortUpcoming(ds []*Deliverable) []*Deliverable {
	sorted := slices.Clone(ds)
	slices.SortStableFunc(sorted, func(a, b *Deliverable) int {
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		}

		return a.DueDate.Compare(*b.DueDate)
	})

	return sorted
}
