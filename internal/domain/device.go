package domain

import "time"

// DeviceType enumerates managed asset categories, hardware and licensed
// services alike.
type DeviceType string

const (
	DeviceTypeServer         DeviceType = "server"
	DeviceTypeStorage        DeviceType = "storage"
	DeviceTypeNetwork        DeviceType = "network"
	DeviceTypeSecurity       DeviceType = "security"
	DeviceTypeComputer       DeviceType = "computer"
	DeviceTypePrinter        DeviceType = "printer"
	DeviceTypeM365           DeviceType = "m365"
	DeviceTypeAdobe          DeviceType = "adobe"
	DeviceTypeAutoCAD        DeviceType = "autocad"
	DeviceTypeDomain         DeviceType = "domain"
	DeviceTypeNetworkService DeviceType = "network_service"
	DeviceTypeSoftware       DeviceType = "software"
)

// DeviceStatus enumerates lifecycle states for a device.
type DeviceStatus string

const (
	DeviceStatusActive      DeviceStatus = "active"
	DeviceStatusInactive    DeviceStatus = "inactive"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
	DeviceStatusFaulty      DeviceStatus = "faulty"
)

// Device is a managed asset owned by a customer. WarrantyExpiry is nil when
// the warranty end date is unknown.
type Device struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Type           DeviceType   `json:"type"`
	Model          string       `json:"model"`
	SerialNumber   string       `json:"serialNumber"`
	CustomerID     int          `json:"customerId"`
	CustomerName   string       `json:"customerName"`
	Status         DeviceStatus `json:"status"`
	WarrantyExpiry *time.Time   `json:"warrantyExpiry,omitempty"`
}
