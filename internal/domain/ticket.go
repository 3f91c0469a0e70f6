package domain

import "time"

// TicketStatus enumerates lifecycle states for service tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketCategory enumerates issue categories.
type TicketCategory string

const (
	TicketCategoryHardware TicketCategory = "hardware"
	TicketCategorySoftware TicketCategory = "software"
	TicketCategoryNetwork  TicketCategory = "network"
	TicketCategoryOther    TicketCategory = "other"
)

// TicketComment is an append-only reply on a ticket.
type TicketComment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketHistoryEntry records a status transition, ordered by timestamp.
type TicketHistoryEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Status    TicketStatus `json:"status"`
	Comment   string       `json:"comment"`
}

// Ticket is the aggregate for service requests. AssignedTo holds the
// display name of the responsible technician, empty when unassigned.
type Ticket struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     TicketCategory       `json:"category"`
	Priority     TicketPriority       `json:"priority"`
	Status       TicketStatus         `json:"status"`
	CustomerID   int                  `json:"customerId"`
	CustomerName string               `json:"customerName"`
	DeviceID     *int                 `json:"deviceId,omitempty"`
	DeviceName   string               `json:"deviceName"`
	AssignedTo   string               `json:"assignedTo"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Comments     []TicketComment      `json:"comments"`
	History      []TicketHistoryEntry `json:"history"`
}

// IsTerminal reports whether the status permits no further transitions.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}
