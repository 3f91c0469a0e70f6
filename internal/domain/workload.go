package domain

// WorkloadDelta is an intent to adjust a technician's workload counter.
// Deltas are computed by pure transition functions and applied by the store
// together with the ticket write, so both sides change or neither does.
type WorkloadDelta struct {
	TechnicianName string
	Delta          int
}

// countingStatuses are the ticket states that contribute to a technician's
// workload.
var countingStatuses = map[TicketStatus]struct{}{
	TicketStatusOpen:       {},
	TicketStatusPending:    {},
	TicketStatusInProgress: {},
}

// IsCountingStatus reports whether tickets in this status count toward the
// assignee's workload.
func IsCountingStatus(s TicketStatus) bool {
	_, ok := countingStatuses[s]
	return ok
}

// WorkloadDeltas computes the workload adjustments implied by a ticket
// transition. prev is nil on creation, next is nil on deletion. Deltas
// referencing an empty technician name are omitted; names that do not
// resolve to a known technician are the store's concern and are dropped
// silently there.
func WorkloadDeltas(prev, next *Ticket) []WorkloadDelta {
	var deltas []WorkloadDelta
	add := func(name string, delta int) {
		if name == "" {
			return
		}
		deltas = append(deltas, WorkloadDelta{TechnicianName: name, Delta: delta})
	}

	switch {
	case prev == nil && next == nil:
		return nil
	case prev == nil:
		if IsCountingStatus(next.Status) {
			add(next.AssignedTo, +1)
		}
	case next == nil:
		if IsCountingStatus(prev.Status) {
			add(prev.AssignedTo, -1)
		}
	case prev.AssignedTo != next.AssignedTo:
		if IsCountingStatus(prev.Status) {
			add(prev.AssignedTo, -1)
		}
		if IsCountingStatus(next.Status) {
			add(next.AssignedTo, +1)
		}
	default:
		wasCounting := IsCountingStatus(prev.Status)
		isCounting := IsCountingStatus(next.Status)
		if wasCounting && !isCounting {
			add(next.AssignedTo, -1)
		} else if !wasCounting && isCounting {
			add(next.AssignedTo, +1)
		}
	}
	return deltas
}
