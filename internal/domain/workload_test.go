package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ticketWith(status TicketStatus, assignee string) *Ticket {
	return &Ticket{ID: "TK-2024-001", Status: status, AssignedTo: assignee}
}

func TestIsCountingStatus(t *testing.T) {
	require.True(t, IsCountingStatus(TicketStatusOpen))
	require.True(t, IsCountingStatus(TicketStatusPending))
	require.True(t, IsCountingStatus(TicketStatusInProgress))
	require.False(t, IsCountingStatus(TicketStatusResolved))
	require.False(t, IsCountingStatus(TicketStatusClosed))
}

func TestWorkloadDeltas(t *testing.T) {
	tests := []struct {
		name string
		prev *Ticket
		next *Ticket
		want []WorkloadDelta
	}{
		{
			name: "create counting ticket",
			next: ticketWith(TicketStatusOpen, "A"),
			want: []WorkloadDelta{{TechnicianName: "A", Delta: 1}},
		},
		{
			name: "create resolved ticket",
			next: ticketWith(TicketStatusResolved, "A"),
			want: nil,
		},
		{
			name: "create unassigned ticket",
			next: ticketWith(TicketStatusOpen, ""),
			want: nil,
		},
		{
			name: "resolve with same assignee",
			prev: ticketWith(TicketStatusOpen, "A"),
			next: ticketWith(TicketStatusResolved, "A"),
			want: []WorkloadDelta{{TechnicianName: "A", Delta: -1}},
		},
		{
			name: "reopen with same assignee",
			prev: ticketWith(TicketStatusClosed, "A"),
			next: ticketWith(TicketStatusInProgress, "A"),
			want: []WorkloadDelta{{TechnicianName: "A", Delta: 1}},
		},
		{
			name: "status change within counting set",
			prev: ticketWith(TicketStatusOpen, "A"),
			next: ticketWith(TicketStatusInProgress, "A"),
			want: nil,
		},
		{
			name: "reassign while counting",
			prev: ticketWith(TicketStatusInProgress, "A"),
			next: ticketWith(TicketStatusInProgress, "B"),
			want: []WorkloadDelta{
				{TechnicianName: "A", Delta: -1},
				{TechnicianName: "B", Delta: 1},
			},
		},
		{
			name: "reassign and resolve at once",
			prev: ticketWith(TicketStatusOpen, "A"),
			next: ticketWith(TicketStatusResolved, "B"),
			want: []WorkloadDelta{{TechnicianName: "A", Delta: -1}},
		},
		{
			name: "assign previously unassigned",
			prev: ticketWith(TicketStatusOpen, ""),
			next: ticketWith(TicketStatusOpen, "B"),
			want: []WorkloadDelta{{TechnicianName: "B", Delta: 1}},
		},
		{
			name: "delete counting ticket",
			prev: ticketWith(TicketStatusPending, "A"),
			want: []WorkloadDelta{{TechnicianName: "A", Delta: -1}},
		},
		{
			name: "delete closed ticket",
			prev: ticketWith(TicketStatusClosed, "A"),
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WorkloadDeltas(tc.prev, tc.next))
		})
	}
}

// A full lifecycle returns every technician to their baseline.
func TestWorkloadDeltasRoundTrip(t *testing.T) {
	created := ticketWith(TicketStatusOpen, "A")
	resolved := ticketWith(TicketStatusResolved, "A")
	reopened := ticketWith(TicketStatusInProgress, "A")
	reassigned := ticketWith(TicketStatusInProgress, "B")

	balance := map[string]int{}
	apply := func(deltas []WorkloadDelta) {
		for _, d := range deltas {
			balance[d.TechnicianName] += d.Delta
		}
	}

	apply(WorkloadDeltas(nil, created))
	require.Equal(t, 1, balance["A"])

	apply(WorkloadDeltas(created, resolved))
	require.Equal(t, 0, balance["A"])

	apply(WorkloadDeltas(resolved, reopened))
	apply(WorkloadDeltas(reopened, reassigned))
	require.Equal(t, 0, balance["A"])
	require.Equal(t, 1, balance["B"])
}
