package worker

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qztech/asset-console/internal/config"
	"github.com/qztech/asset-console/internal/domain"
	"github.com/qztech/asset-console/internal/events"
	"github.com/qztech/asset-console/internal/repository"
	"github.com/qztech/asset-console/internal/status"
)

// ReminderScheduler periodically scans warranties and maintenance schedules
// and publishes reminder events for anything inside the warning windows.
// Each scan captures one reference time so every item in a run is judged
// against the same instant.
type ReminderScheduler struct {
	devices      repository.DeviceRepository
	maintenances repository.MaintenanceRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	cfg          config.ReminderConfig
	scheduler    gocron.Scheduler
}

// NewReminderScheduler constructs the scheduler.
func NewReminderScheduler(devices repository.DeviceRepository, maintenances repository.MaintenanceRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.ReminderConfig) *ReminderScheduler {
	return &ReminderScheduler{
		devices:      devices,
		maintenances: maintenances,
		dispatcher:   dispatcher,
		logger:       logger,
		cfg:          cfg,
	}
}

// Start schedules the recurring scan. An interval of 0 disables the job.
func (r *ReminderScheduler) Start(ctx context.Context) error {
	if r.cfg.IntervalHours <= 0 {
		r.logger.Info("reminder scheduler disabled")
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DurationJob(time.Duration(r.cfg.IntervalHours)*time.Hour),
		gocron.NewTask(func() {
			r.Scan(ctx, time.Now())
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	r.scheduler = s
	s.Start()
	r.logger.Info("reminder scheduler started", zap.Int("interval_hours", r.cfg.IntervalHours))
	return nil
}

// Stop shuts the scheduler down, waiting for an in-flight scan.
func (r *ReminderScheduler) Stop() error {
	if r.scheduler == nil {
		return nil
	}
	return r.scheduler.Shutdown()
}

// Scan runs one reminder pass against the given reference time.
func (r *ReminderScheduler) Scan(ctx context.Context, reference time.Time) {
	r.scanWarranties(ctx, reference)
	r.scanMaintenance(ctx, reference)
}

func (r *ReminderScheduler) scanWarranties(ctx context.Context, reference time.Time) {
	devices, err := r.devices.List(ctx, repository.DeviceFilter{})
	if err != nil {
		r.logger.Error("warranty scan failed", zap.Error(err))
		return
	}
	annotated := status.Annotate(devices, func(d domain.Device) *time.Time {
		return d.WarrantyExpiry
	}, status.Warranty, reference)

	for _, a := range annotated {
		if a.Tag == status.TagActive || a.Tag == status.TagUnknown {
			continue
		}
		r.publish(ctx, events.EventWarrantyExpiring, events.WarrantyExpiringPayload{
			DeviceID:      a.Entity.ID,
			DeviceName:    a.Entity.Name,
			CustomerName:  a.Entity.CustomerName,
			Tag:           string(a.Tag),
			DaysRemaining: *a.DaysRemaining,
		})
	}
}

func (r *ReminderScheduler) scanMaintenance(ctx context.Context, reference time.Time) {
	schedules, err := r.maintenances.List(ctx, repository.MaintenanceFilter{})
	if err != nil {
		r.logger.Error("maintenance scan failed", zap.Error(err))
		return
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

	for _, a := range annotated {
		if a.Tag == status.TagScheduled || a.Tag == status.TagUnknown {
			continue
		}
		r.publish(ctx, events.EventMaintenanceDue, events.MaintenanceDuePayload{
			ScheduleID:    a.Entity.ID,
			DeviceName:    a.Entity.DeviceName,
			Technician:    a.Entity.AssignedTechnician,
			Tag:           string(a.Tag),
			DaysRemaining: *a.DaysRemaining,
		})
	}
}

func (r *ReminderScheduler) publish(ctx context.Context, eventType events.EventType, payload any) {
	if r.dispatcher == nil {
		return
	}
	_ = r.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{Name: "reminder-scheduler", Role: domain.RoleAdmin},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
