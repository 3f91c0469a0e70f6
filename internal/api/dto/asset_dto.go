package dto

import (
	"time"

	"github.com/qztech/asset-console/internal/domain"
)

// CustomerRequest payload for create/update.
type CustomerRequest struct {
	Name   string                `json:"name"`
	Email  string                `json:"email"`
	Phone  string                `json:"phone"`
	Status domain.CustomerStatus `json:"status"`
}

// DeviceRequest payload for create/update.
type DeviceRequest struct {
	Name           string              `json:"name"`
	Type           domain.DeviceType   `json:"type"`
	Model          string              `json:"model"`
	SerialNumber   string              `json:"serialNumber"`
	CustomerID     int                 `json:"customerId"`
	Status         domain.DeviceStatus `json:"status"`
	WarrantyExpiry *time.Time          `json:"warrantyExpiry"`
}

// TechnicianRequest payload for create/update.
type TechnicianRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Speciality string `json:"speciality"`
}
