package dto

import (
	"time"

	"github.com/qztech/asset-console/internal/domain"
)

// MaintenanceRequest payload for create/update.
type MaintenanceRequest struct {
	DeviceID           int                         `json:"deviceId"`
	MaintenanceType    string                      `json:"maintenanceType"`
	Frequency          domain.MaintenanceFrequency `json:"frequency"`
	CustomDays         int                         `json:"customDays"`
	Description        string                      `json:"description"`
	AssignedTechnician string                      `json:"assignedTechnician"`
	NextMaintenance    *time.Time                  `json:"nextMaintenance"`
	Active             *bool                       `json:"isActive"`
}

// ExecuteMaintenanceRequest payload. ExecutedAt defaults to the server's
// current time when absent.
type ExecuteMaintenanceRequest struct {
	ExecutedAt *time.Time `json:"executedAt"`
}

// CreateInventoryRequest payload.
type CreateInventoryRequest struct {
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	CustomerID    int        `json:"customerId"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// UpdateInventoryRequest payload. Absent fields leave the session
// unchanged; count fields accept explicit zeros.
type UpdateInventoryRequest struct {
	Name            *string                 `json:"name"`
	Type            *string                 `json:"type"`
	Status          *domain.InventoryStatus `json:"status"`
	ScheduledDate   *time.Time              `json:"scheduledDate"`
	CheckedDevices  *int                    `json:"checkedDevices"`
	NormalDevices   *int                    `json:"normalDevices"`
	AbnormalDevices *int                    `json:"abnormalDevices"`
	MissingDevices  *int                    `json:"missingDevices"`
}
