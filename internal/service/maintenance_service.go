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

// MaintenanceService manages recurring maintenance schedules.
type MaintenanceService struct {
	maintenances repository.MaintenanceRepository
	devices      repository.DeviceRepository
	dispatcher   events.Dispatcher
}

// NewMaintenanceService constructs the service.
func NewMaintenanceService(maintenances repository.MaintenanceRepository, devices repository.DeviceRepository, dispatcher events.Dispatcher) *MaintenanceService {
	return &MaintenanceService{maintenances: maintenances, devices: devices, dispatcher: dispatcher}
}

// MaintenanceInput describes create/update payloads.
type MaintenanceInput struct {
	DeviceID           int
	MaintenanceType    string
	Frequency          domain.MaintenanceFrequency
	CustomDays         int
	Description        string
	AssignedTechnician string
	NextMaintenance    *time.Time
	Active             *bool
}

// DueOverview is the classified maintenance view.
type DueOverview struct {
	Schedules []status.Annotated[domain.MaintenanceSchedule] `json:"schedules"`
	Counts    map[status.Tag]int                             `json:"counts"`
}

// List returns schedules matching the filter. Customers do not see
// maintenance plans.
func (s *MaintenanceService) List(ctx context.Context, actor domain.User, filter repository.MaintenanceFilter) ([]domain.MaintenanceSchedule, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	schedules, err := s.maintenances.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return schedules, nil
}

// Get fetches a single schedule.
func (s *MaintenanceService) Get(ctx context.Context, actor domain.User, id int) (*domain.MaintenanceSchedule, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	schedule, err := s.maintenances.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return schedule, nil
}

// Create registers a schedule, denormalizing device fields.
func (s *MaintenanceService) Create(ctx context.Context, actor domain.User, input MaintenanceInput) (*domain.MaintenanceSchedule, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, apperrors.NewForbidden("access denied")
	}
	if input.DeviceID == 0 || strings.TrimSpace(input.MaintenanceType) == "" {
		return nil, apperrors.NewValidationError("device and maintenance type are required", nil)
	}
	device, err := s.devices.GetByID(ctx, input.DeviceID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	schedule := &domain.MaintenanceSchedule{
		DeviceID:           device.ID,
		DeviceName:         device.Name,
		DeviceType:         device.Type,
		CustomerName:       device.CustomerName,
		MaintenanceType:    strings.TrimSpace(input.MaintenanceType),
		Frequency:          input.Frequency,
		CustomDays:         input.CustomDays,
		Description:        strings.TrimSpace(input.Description),
		AssignedTechnician: strings.TrimSpace(input.AssignedTechnician),
		NextMaintenance:    input.NextMaintenance,
		Active:             true,
		Status:             domain.MaintenanceStatusScheduled,
	}
	if schedule.Frequency == "" {
		schedule.Frequency = domain.FrequencyMonthly
	}
	if input.Active != nil {
		schedule.Active = *input.Active
	}
	if schedule.NextMaintenance == nil {
		next := schedule.NextOccurrence(time.Now())
		schedule.NextMaintenance = &next
	}
	if err := s.maintenances.Create(ctx, schedule); err != nil {
		return nil, apperrors.MapError(err)
	}
	return schedule, nil
}

// Update merges changes into a schedule.
func (s *MaintenanceService) Update(ctx context.Context, actor domain.User, id int, input MaintenanceInput) (*domain.MaintenanceSchedule, error) {
	existing, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if input.DeviceID != 0 && input.DeviceID != existing.DeviceID {
		device, err := s.devices.GetByID(ctx, input.DeviceID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		existing.DeviceID = device.ID
		existing.DeviceName = device.Name
		existing.DeviceType = device.Type
		existing.CustomerName = device.CustomerName
	}
	if strings.TrimSpace(input.MaintenanceType) != "" {
		existing.MaintenanceType = strings.TrimSpace(input.MaintenanceType)
	}
	if input.Frequency != "" {
		existing.Frequency = input.Frequency
	}
	if input.CustomDays != 0 {
		existing.CustomDays = input.CustomDays
	}
	if strings.TrimSpace(input.Description) != "" {
		existing.Description = strings.TrimSpace(input.Description)
	}
	if strings.TrimSpace(input.AssignedTechnician) != "" {
		existing.AssignedTechnician = strings.TrimSpace(input.AssignedTechnician)
	}
	if input.NextMaintenance != nil {
		existing.NextMaintenance = input.NextMaintenance
	}
	if input.Active != nil {
		existing.Active = *input.Active
	}
	if err := s.maintenances.Update(ctx, existing); err != nil {
		return nil, apperrors.MapError(err)
	}
	return existing, nil
}

// Delete removes a schedule.
func (s *MaintenanceService) Delete(ctx context.Context, actor domain.User, id int) error {
	if actor.Role == domain.RoleCustomer {
		return apperrors.NewForbidden("access denied")
	}
	if err := s.maintenances.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// Execute records a completed maintenance run: counters advance, the run
// date becomes the last maintenance, and the next due date moves forward
// by the schedule's frequency.
func (s *MaintenanceService) Execute(ctx context.Context, actor domain.User, id int, executedAt time.Time) (*domain.MaintenanceSchedule, error) {
	schedule, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	ran := executedAt
	schedule.LastMaintenance = &ran
	next := schedule.NextOccurrence(executedAt)
	schedule.NextMaintenance = &next
	schedule.CompletedMaintenances++
	schedule.TotalMaintenances++
	schedule.Status = domain.MaintenanceStatusScheduled

	if err := s.maintenances.Update(ctx, schedule); err != nil {
		return nil, apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMaintenanceExecuted,
			Actor:     events.Actor{Name: actor.Name, Role: actor.Role},
			Timestamp: time.Now(),
			Payload: events.MaintenanceExecutedPayload{
				ScheduleID: schedule.ID,
				DeviceName: schedule.DeviceName,
				NextDue:    next.Format("2006-01-02"),
			},
		})
	}
	return schedule, nil
}

// DueView classifies active schedules against the reference time, ordered
// most urgent first.
func (s *MaintenanceService) DueView(ctx context.Context, actor domain.User, reference time.Time) (*DueOverview, error) {
	schedules, err := s.List(ctx, actor, repository.MaintenanceFilter{})
	if err != nil {
		return nil, err
	}
	active := schedules[:0]
	for _, m := range schedules {
		if m.Active {
			active = append(active, m)
		}
	}

	annotated := status.Annotate(active, func(m domain.MaintenanceSchedule) *time.Time {
		return m.NextMaintenance
	}, status.Maintenance, reference)
	status.SortByDaysRemaining(annotated)

	return &DueOverview{
		Schedules: annotated,
		Counts:    status.CountByTag(annotated, status.Maintenance),
	}, nil
}
