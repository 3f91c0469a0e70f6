package dto

import "github.com/qztech/asset-console/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UserResponse describes the authenticated user.
type UserResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	CustomerID int         `json:"customerId,omitempty"`
}

// LoginResponse returns the resolved user and bearer token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
