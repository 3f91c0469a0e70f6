package events

import (
	"time"

	"github.com/qztech/asset-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated        EventType = "ticket_created"
	EventTicketStatusChanged  EventType = "ticket_status_changed"
	EventTicketAssigned       EventType = "ticket_assigned"
	EventTicketCommentAdded   EventType = "ticket_comment_added"
	EventWarrantyExpiring     EventType = "warranty_expiring"
	EventMaintenanceDue       EventType = "maintenance_due"
	EventMaintenanceExecuted  EventType = "maintenance_executed"
	EventInventoryStatusMoved EventType = "inventory_status_moved"
)

// Actor identifies who triggered an event.
type Actor struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID   string                `json:"ticket_id"`
	CustomerID int                   `json:"customer_id"`
	Priority   domain.TicketPriority `json:"priority"`
	Title      string                `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Comment   string              `json:"comment,omitempty"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	TicketID    string `json:"ticket_id"`
	OldAssignee string `json:"old_assignee,omitempty"`
	NewAssignee string `json:"new_assignee,omitempty"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	TicketID    string `json:"ticket_id"`
	CommentID   string `json:"comment_id"`
	Author      string `json:"author"`
	BodyPreview string `json:"body_preview"`
}

// WarrantyExpiringPayload payload.
type WarrantyExpiringPayload struct {
	DeviceID      int    `json:"device_id"`
	DeviceName    string `json:"device_name"`
	CustomerName  string `json:"customer_name"`
	Tag           string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// MaintenanceDuePayload payload.
type MaintenanceDuePayload struct {
	ScheduleID    int    `json:"schedule_id"`
	DeviceName    string `json:"device_name"`
	Technician    string `json:"technician"`
	Tag           string `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
}

// MaintenanceExecutedPayload payload.
type MaintenanceExecutedPayload struct {
	ScheduleID int    `json:"schedule_id"`
	DeviceName string `json:"device_name"`
	NextDue    string `json:"next_due"`
}

// InventoryStatusMovedPayload payload.
type InventoryStatusMovedPayload struct {
	SessionID int                    `json:"session_id"`
	OldStatus domain.InventoryStatus `json:"old_status"`
	NewStatus domain.InventoryStatus `json:"new_status"`
}
