package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/events"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// TicketService coordinates ticket workflows and the ticket/technician
// workload coupling.
type TicketService struct {
	tickets     repository.TicketRepository
	customers   repository.CustomerRepository
	devices     repository.DeviceRepository
	technicians repository.TechnicianRepository
	dispatcher  events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	CustomerRepo   repository.CustomerRepository
	DeviceRepo     repository.DeviceRepository
	TechnicianRepo repository.TechnicianRepository
	Dispatcher     events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:     deps.TicketRepo,
		customers:   deps.CustomerRepo,
		devices:     deps.DeviceRepo,
		technicians: deps.TechnicianRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
	Status      domain.TicketStatus
	CustomerID  int
	DeviceID    *int
	AssignedTo  string
}

// TicketUpdateInput describes ticket update payload. Pointer fields are
// left unchanged when nil.
type TicketUpdateInput struct {
	Title       *string
	Description *string
	Category    *domain.TicketCategory
	Priority    *domain.TicketPriority
	Status      *domain.TicketStatus
	AssignedTo  *string
	Comment     string
}

// TicketStatistics is the dashboard view over a ticket set.
type TicketStatistics struct {
	Total               int                           `json:"total"`
	ByStatus            map[domain.TicketStatus]int   `json:"byStatus"`
	StatusPercentages   map[domain.TicketStatus]int   `json:"statusPercentages"`
	ByPriority          map[domain.TicketPriority]int `json:"byPriority"`
	PriorityPercentages map[domain.TicketPriority]int `json:"priorityPercentages"`
	TechnicianLoad      []TechnicianLoad              `json:"technicianLoad"`
}

// TechnicianLoad pairs a technician with their scaled workload.
type TechnicianLoad struct {
	Technician domain.Technician `json:"technician"`
	Percentage int               `json:"percentage"`
}

// List returns tickets visible to the actor, customer-scoped first.
func (s *TicketService) List(ctx context.Context, actor domain.User, filter repository.TicketFilter) ([]domain.Ticket, error) {
	if actor.Role == domain.RoleCustomer {
		filter.CustomerID = actor.CustomerID
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Get fetches a ticket, enforcing customer ownership.
func (s *TicketService) Get(ctx context.Context, actor domain.User, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role == domain.RoleCustomer && ticket.CustomerID != actor.CustomerID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// Create opens a ticket. The assignee's workload is adjusted in the same
// store transaction as the insert.
func (s *TicketService) Create(ctx context.Context, actor domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || input.CustomerID == 0 {
		return nil, apperrors.NewValidationError("title, description and customer are required", nil)
	}
	if actor.Role == domain.RoleCustomer && input.CustomerID != actor.CustomerID {
		return nil, apperrors.NewForbidden("cannot open tickets for another customer")
	}

	now := time.Now()
	ticket := &domain.Ticket{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     input.Category,
		Priority:     input.Priority,
		Status:       input.Status,
		CustomerID:   input.CustomerID,
		CustomerName: s.customerName(ctx, input.CustomerID),
		DeviceID:     input.DeviceID,
		AssignedTo:   input.AssignedTo,
		CreatedAt:    now,
		UpdatedAt:    now,
		Comments:     []domain.TicketComment{},
	}
	if ticket.Category == "" {
		ticket.Category = domain.TicketCategoryOther
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if input.DeviceID != nil {
		if device, err := s.devices.GetByID(ctx, *input.DeviceID); err == nil {
			ticket.DeviceName = device.Name
		}
	}
	ticket.History = []domain.TicketHistoryEntry{
		{Timestamp: now, Status: ticket.Status, Comment: "建立工單"},
	}

	deltas := domain.WorkloadDeltas(nil, ticket)
	if err := s.tickets.Create(ctx, ticket, deltas); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTicketCreated, events.TicketCreatedPayload{
		TicketID:   ticket.ID,
		CustomerID: ticket.CustomerID,
		Priority:   ticket.Priority,
		Title:      ticket.Title,
	})
	return ticket, nil
}

// Update merges changes into a ticket. Status and assignee transitions are
// routed through the workload transition function and applied atomically
// with the ticket write.
func (s *TicketService) Update(ctx context.Context, actor domain.User, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	prev, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next := *prev
	next.Comments = prev.Comments
	next.History = prev.History
	if input.Title != nil {
		next.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		next.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		next.Category = *input.Category
	}
	if input.Priority != nil {
		next.Priority = *input.Priority
	}
	if input.Status != nil {
		next.Status = *input.Status
	}
	if input.AssignedTo != nil {
		next.AssignedTo = *input.AssignedTo
	}
	now := time.Now()
	next.UpdatedAt = now

	if next.Status != prev.Status {
		next.History = append(next.History, domain.TicketHistoryEntry{
			Timestamp: now,
			Status:    next.Status,
			Comment:   input.Comment,
		})
	}

	deltas := domain.WorkloadDeltas(prev, &next)
	if err := s.tickets.Update(ctx, &next, deltas); err != nil {
		return nil, apperrors.MapError(err)
	}

	if next.Status != prev.Status {
		s.publish(ctx, actor, events.EventTicketStatusChanged, events.TicketStatusChangedPayload{
			TicketID:  next.ID,
			OldStatus: prev.Status,
			NewStatus: next.Status,
			Comment:   input.Comment,
		})
	}
	if next.AssignedTo != prev.AssignedTo {
		s.publish(ctx, actor, events.EventTicketAssigned, events.TicketAssignedPayload{
			TicketID:    next.ID,
			OldAssignee: prev.AssignedTo,
			NewAssignee: next.AssignedTo,
		})
	}
	return &next, nil
}

// Delete removes a ticket, releasing the assignee's workload when the
// ticket was still counting.
func (s *TicketService) Delete(ctx context.Context, actor domain.User, id string) error {
	if actor.Role == domain.RoleCustomer {
		return apperrors.NewForbidden("customers cannot delete tickets")
	}
	prev, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	deltas := domain.WorkloadDeltas(prev, nil)
	if err := s.tickets.Delete(ctx, id, deltas); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// AddComment appends a reply to a ticket.
func (s *TicketService) AddComment(ctx context.Context, actor domain.User, id, message string) (*domain.Ticket, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("message is required", nil)
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	comment := domain.TicketComment{
		ID:        uuid.NewString(),
		Author:    actor.Name,
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now(),
	}
	ticket, err := s.tickets.AppendComment(ctx, id, comment)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, actor, events.EventTicketCommentAdded, events.TicketCommentAddedPayload{
		TicketID:    ticket.ID,
		CommentID:   comment.ID,
		Author:      comment.Author,
		BodyPreview: preview(comment.Message, 120),
	})
	return ticket, nil
}

// Statistics computes the dashboard distribution over the actor's visible
// tickets.
func (s *TicketService) Statistics(ctx context.Context, actor domain.User) (*TicketStatistics, error) {
	tickets, err := s.List(ctx, actor, repository.TicketFilter{})
	if err != nil {
		return nil, err
	}

	stats := &TicketStatistics{
		Total:               len(tickets),
		ByStatus:            map[domain.TicketStatus]int{},
		StatusPercentages:   map[domain.TicketStatus]int{},
		ByPriority:          map[domain.TicketPriority]int{},
		PriorityPercentages: map[domain.TicketPriority]int{},
	}
	allStatuses := []domain.TicketStatus{
		domain.TicketStatusOpen, domain.TicketStatusPending, domain.TicketStatusInProgress,
		domain.TicketStatusResolved, domain.TicketStatusClosed,
	}
	allPriorities := []domain.TicketPriority{
		domain.TicketPriorityUrgent, domain.TicketPriorityHigh,
		domain.TicketPriorityMedium, domain.TicketPriorityLow,
	}
	for _, st := range allStatuses {
		stats.ByStatus[st] = 0
	}
	for _, p := range allPriorities {
		stats.ByPriority[p] = 0
	}
	for _, t := range tickets {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
	}
	for _, st := range allStatuses {
		stats.StatusPercentages[st] = status.Percentage(stats.ByStatus[st], stats.Total)
	}
	for _, p := range allPriorities {
		stats.PriorityPercentages[p] = status.Percentage(stats.ByPriority[p], stats.Total)
	}

	technicians, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	maxLoad := 0
	for _, tech := range technicians {
		if tech.Workload > maxLoad {
			maxLoad = tech.Workload
		}
	}
	for _, tech := range technicians {
		stats.TechnicianLoad = append(stats.TechnicianLoad, TechnicianLoad{
			Technician: tech,
			Percentage: status.WorkloadPercentage(tech.Workload, maxLoad),
		})
	}
	return stats, nil
}

func (s *TicketService) customerName(ctx context.Context, customerID int) string {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return ""
	}
	return customer.Name
}

func (s *TicketService) publish(ctx context.Context, actor domain.User, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{Name: actor.Name, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// preview truncates on rune boundaries so multi-byte comment bodies
// stay valid UTF-8.
func preview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
