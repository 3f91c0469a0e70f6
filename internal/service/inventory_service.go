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

// InventoryService manages stocktaking sessions over customer devices.
type InventoryService struct {
	inventories repository.InventoryRepository
	customers   repository.CustomerRepository
	devices     repository.DeviceRepository
	dispatcher  events.Dispatcher
}

// NewInventoryService constructs the service.
func NewInventoryService(inventories repository.InventoryRepository, customers repository.CustomerRepository, devices repository.DeviceRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{inventories: inventories, customers: customers, devices: devices, dispatcher: dispatcher}
}

// InventoryCreateInput describes session creation payload.
type InventoryCreateInput struct {
	Name          string
	Type          string
	CustomerID    int
	ScheduledDate *time.Time
}

// InventoryUpdateInput describes session update payload. Count fields are
// pointers so zero is a settable value.
type InventoryUpdateInput struct {
	Name            *string
	Type            *string
	Status          *domain.InventoryStatus
	ScheduledDate   *time.Time
	CheckedDevices  *int
	NormalDevices   *int
	AbnormalDevices *int
	MissingDevices  *int
}

// InventoryProgress is the per-session completion view.
type InventoryProgress struct {
	Session            domain.InventorySession `json:"session"`
	ProgressPercentage int                     `json:"progressPercentage"`
}

// InventoryStatistics aggregates sessions along the dashboard dimensions.
type InventoryStatistics struct {
	Total      int                              `json:"total"`
	ByStatus   map[domain.InventoryStatus]int   `json:"byStatus"`
	ByCustomer map[string]status.AggregateStats `json:"byCustomer"`
	ByMonth    map[string]status.AggregateStats `json:"byMonth"`
}

// List returns sessions visible to the actor.
func (s *InventoryService) List(ctx context.Context, actor domain.User, filter repository.InventoryFilter) ([]domain.InventorySession, error) {
	if actor.Role == domain.RoleCustomer {
		filter.CustomerID = actor.CustomerID
	}
	sessions, err := s.inventories.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return sessions, nil
}

// Get fetches a session, enforcing customer ownership.
func (s *InventoryService) Get(ctx context.Context, actor domain.User, id int) (*domain.InventorySession, error) {
	session, err := s.inventories.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role == domain.RoleCustomer && session.CustomerID != actor.CustomerID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return session, nil
}

// Create schedules a session. TotalDevices is counted from the customer's
// current device inventory.
func (s *InventoryService) Create(ctx context.Context, actor domain.User, input InventoryCreateInput) (*domain.InventorySession, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	if strings.TrimSpace(input.Name) == "" || input.CustomerID == 0 {
		return nil, apperrors.NewValidationError("name and customer are required", nil)
	}
	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	devices, err := s.devices.List(ctx, repository.DeviceFilter{CustomerID: input.CustomerID})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	session := &domain.InventorySession{
		Name:          strings.TrimSpace(input.Name),
		Type:          strings.TrimSpace(input.Type),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Status:        domain.InventoryStatusScheduled,
		ScheduledDate: input.ScheduledDate,
		TotalDevices:  len(devices),
	}
	if err := s.inventories.Create(ctx, session); err != nil {
		return nil, apperrors.MapError(err)
	}
	return session, nil
}

// Update merges progress and status changes into a session. The checked
// count never exceeds the total and breakdown counts never exceed checked.
func (s *InventoryService) Update(ctx context.Context, actor domain.User, id int, input InventoryUpdateInput) (*domain.InventorySession, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	session, err := s.inventories.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	oldStatus := session.Status

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		session.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		session.Type = strings.TrimSpace(*input.Type)
	}
	if input.ScheduledDate != nil {
		session.ScheduledDate = input.ScheduledDate
	}
	if input.CheckedDevices != nil {
		session.CheckedDevices = clampCount(*input.CheckedDevices, session.TotalDevices)
	}
	if input.NormalDevices != nil {
		session.NormalDevices = clampCount(*input.NormalDevices, session.CheckedDevices)
	}
	if input.AbnormalDevices != nil {
		session.AbnormalDevices = clampCount(*input.AbnormalDevices, session.CheckedDevices)
	}
	if input.MissingDevices != nil {
		session.MissingDevices = clampCount(*input.MissingDevices, session.CheckedDevices)
	}
	if session.NormalDevices+session.AbnormalDevices+session.MissingDevices > session.CheckedDevices {
		return nil, apperrors.NewValidationError("device breakdown exceeds checked count", map[string]any{
			"checkedDevices": session.CheckedDevices,
		})
	}
	if input.Status != nil {
		session.Status = *input.Status
	}

	if err := s.inventories.Update(ctx, session); err != nil {
		return nil, apperrors.MapError(err)
	}

	if session.Status != oldStatus && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInventoryStatusMoved,
			Actor:     events.Actor{Name: actor.Name, Role: actor.Role},
			Timestamp: time.Now(),
			Payload: events.InventoryStatusMovedPayload{
				SessionID: session.ID,
				OldStatus: oldStatus,
				NewStatus: session.Status,
			},
		})
	}
	return session, nil
}

// Delete removes a session.
func (s *InventoryService) Delete(ctx context.Context, actor domain.User, id int) error {
	if actor.Role == domain.RoleCustomer {
		return apperrors.NewForbidden("access denied")
	}
	if err := s.inventories.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// Progress returns each visible session with its checked/total percentage.
func (s *InventoryService) Progress(ctx context.Context, actor domain.User) ([]InventoryProgress, error) {
	sessions, err := s.List(ctx, actor, repository.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]InventoryProgress, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, InventoryProgress{
			Session:            session,
			ProgressPercentage: status.Percentage(session.CheckedDevices, session.TotalDevices),
		})
	}
	return out, nil
}

// Statistics folds the actor's visible sessions by customer and by
// scheduled month.
func (s *InventoryService) Statistics(ctx context.Context, actor domain.User) (*InventoryStatistics, error) {
	sessions, err := s.List(ctx, actor, repository.InventoryFilter{})
	if err != nil {
		return nil, err
	}

	stats := &InventoryStatistics{
		Total:    len(sessions),
		ByStatus: map[domain.InventoryStatus]int{},
	}
	for _, st := range []domain.InventoryStatus{
		domain.InventoryStatusScheduled, domain.InventoryStatusInProgress,
		domain.InventoryStatusCompleted, domain.InventoryStatusCancelled,
	} {
		stats.ByStatus[st] = 0
	}
	for _, session := range sessions {
		stats.ByStatus[session.Status]++
	}

	accumulate := func(agg *status.AggregateStats, session domain.InventorySession) {
		if session.Status == domain.InventoryStatusCompleted {
			agg.CompletedCount++
		}
		agg.TotalDevices += session.TotalDevices
		agg.CheckedDevices += session.CheckedDevices
		agg.NormalDevices += session.NormalDevices
		agg.AbnormalDevices += session.AbnormalDevices
		agg.MissingDevices += session.MissingDevices
	}
	stats.ByCustomer = status.AggregateBy(sessions, func(session domain.InventorySession) string {
		return session.CustomerName
	}, accumulate)
	stats.ByMonth = status.AggregateBy(sessions, func(session domain.InventorySession) string {
		if session.ScheduledDate == nil {
			return "unscheduled"
		}
		return session.ScheduledDate.Format("2006-01")
	}, accumulate)
	return stats, nil
}

func clampCount(value, max int) int {
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}
