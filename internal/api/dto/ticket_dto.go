package dto

import "github.com/qztech/asset-console/internal/domain"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
	Status      domain.TicketStatus   `json:"status"`
	CustomerID  int                   `json:"customerId"`
	DeviceID    *int                  `json:"deviceId"`
	AssignedTo  string                `json:"assignedTo"`
}

// UpdateTicketRequest payload. Absent fields leave the ticket unchanged.
type UpdateTicketRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Category    *domain.TicketCategory `json:"category"`
	Priority    *domain.TicketPriority `json:"priority"`
	Status      *domain.TicketStatus   `json:"status"`
	AssignedTo  *string                `json:"assignedTo"`
	Comment     string                 `json:"comment"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Message string `json:"message"`
}
