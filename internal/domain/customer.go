package domain

// CustomerStatus represents lifecycle states for a customer account.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer is a tenant company whose assets and tickets are managed.
type Customer struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  string         `json:"phone"`
	Status CustomerStatus `json:"status"`
}
