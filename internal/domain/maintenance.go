package domain

import "time"

// MaintenanceFrequency enumerates recurrence intervals for schedules.
type MaintenanceFrequency string

const (
	FrequencyWeekly    MaintenanceFrequency = "weekly"
	FrequencyMonthly   MaintenanceFrequency = "monthly"
	FrequencyQuarterly MaintenanceFrequency = "quarterly"
	FrequencyAnnual    MaintenanceFrequency = "annual"
	FrequencyCustom    MaintenanceFrequency = "custom"
)

// MaintenanceScheduleStatus enumerates schedule lifecycle states.
type MaintenanceScheduleStatus string

const (
	MaintenanceStatusScheduled MaintenanceScheduleStatus = "scheduled"
	MaintenanceStatusCompleted MaintenanceScheduleStatus = "completed"
	MaintenanceStatusCancelled MaintenanceScheduleStatus = "cancelled"
)

// MaintenanceSchedule describes recurring maintenance for a device.
// CompletedMaintenances and TotalMaintenances only grow, and completed
// never exceeds total.
type MaintenanceSchedule struct {
	ID                    int                       `json:"id"`
	DeviceID              int                       `json:"deviceId"`
	DeviceName            string                    `json:"deviceName"`
	DeviceType            DeviceType                `json:"deviceType"`
	CustomerName          string                    `json:"customerName"`
	MaintenanceType       string                    `json:"maintenanceType"`
	Frequency             MaintenanceFrequency      `json:"frequency"`
	CustomDays            int                       `json:"customDays,omitempty"`
	Description           string                    `json:"description"`
	AssignedTechnician    string                    `json:"assignedTechnician"`
	Active                bool                      `json:"isActive"`
	LastMaintenance       *time.Time                `json:"lastMaintenance,omitempty"`
	NextMaintenance       *time.Time                `json:"nextMaintenance,omitempty"`
	Status                MaintenanceScheduleStatus `json:"status"`
	CompletedMaintenances int                       `json:"completedMaintenances"`
	TotalMaintenances     int                       `json:"totalMaintenances"`
}

// NextOccurrence returns the next due date implied by the schedule's
// frequency, counted from the given day. Custom frequencies fall back to 30
// days when CustomDays is not positive.
func (s MaintenanceSchedule) NextOccurrence(from time.Time) time.Time {
	switch s.Frequency {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case FrequencyAnnual:
		return from.AddDate(1, 0, 0)
	case FrequencyCustom:
		days := s.CustomDays
		if days <= 0 {
			days = 30
		}
		return from.AddDate(0, 0, days)
	default:
		return from.AddDate(0, 1, 0)
	}
}
