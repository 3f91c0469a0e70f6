package domain

import "time"

// InventoryStatus enumerates inventory session lifecycle states.
type InventoryStatus string

const (
	InventoryStatusScheduled  InventoryStatus = "scheduled"
	InventoryStatusInProgress InventoryStatus = "in_progress"
	InventoryStatusCompleted  InventoryStatus = "completed"
	InventoryStatusCancelled  InventoryStatus = "cancelled"
)

// InventorySession tracks a stocktaking run over a customer's devices.
// Invariants: 0 <= CheckedDevices <= TotalDevices and
// NormalDevices + AbnormalDevices + MissingDevices <= CheckedDevices.
type InventorySession struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	CustomerID      int             `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Status          InventoryStatus `json:"status"`
	ScheduledDate   *time.Time      `json:"scheduledDate,omitempty"`
	TotalDevices    int             `json:"totalDevices"`
	CheckedDevices  int             `json:"checkedDevices"`
	NormalDevices   int             `json:"normalDevices"`
	AbnormalDevices int             `json:"abnormalDevices"`
	MissingDevices  int             `json:"missingDevices"`
}
