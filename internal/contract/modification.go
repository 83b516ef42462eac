package contract

// Modifications move forward one step at a time through
// DRAFT -> PENDING -> UNDER_REVIEW -> APPROVED -> EXECUTED. Any state before
// APPROVED may instead end in REJECTED or CANCELLED.
var modificationTransitions = map[ModificationStatus][]ModificationStatus{
	ModificationStatusDraft: {
		ModificationStatusPending,
		ModificationStatusRejected,
		ModificationStatusCancelled,
	},
	ModificationStatusPending: {
		ModificationStatusUnderReview,
		ModificationStatusRejected,
		ModificationStatusCancelled,
	},
	ModificationStatusUnderReview: {
		ModificationStatusApproved,
		ModificationStatusRejected,
		ModificationStatusCancelled,
	},
	ModificationStatusApproved: {
		ModificationStatusExecuted,
	},
}

// CanExecute reports whether a modification in status s may be executed.
func CanExecute(s ModificationStatus) bool {
	return s == ModificationStatusApproved
}

func CanTransition(from, to ModificationStatus) bool {
	for _, next := range modificationTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// NextStatuses lists the statuses reachable from s in one step.
func NextStatuses(s ModificationStatus) []ModificationStatus {
	return modificationTransitions[s]
}

func (s ModificationStatus) Terminal() bool {
	switch s {
	case ModificationStatusExecuted, ModificationStatusRejected, ModificationStatusCancelled:
		return true
	}

	return false
}

// Pending reports whether the modification is still awaiting execution.
func (s ModificationStatus) Pending() bool {
	switch s {
	case ModificationStatusDraft, ModificationStatusPending, ModificationStatusUnderReview, ModificationStatusApproved:
		return true
	}

	return false
}

// ApplyExecution rolls the deltas of an executed modification into its
// contract. An explicit new PoP end date wins over an extension in days.
func ApplyExecution(c *Contract, m *Modification) {
	c.TotalValue = c.TotalValue.Add(orZero(m.ValueChange))
	c.FundedValue = c.FundedValue.Add(orZero(m.FundingChange))

	switch {
	case m.NewPopEndDate != nil:
		c.PopEndDate = new(*m.NewPopEndDate)
	case m.PopExtensionDays != nil && c.PopEndDate != nil:
		c.PopEndDate = new(c.PopEndDate.AddDate(0, 0, *m.PopExtensionDays))
	}
}
