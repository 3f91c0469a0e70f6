package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/api/dto"
	"github.com/qztech/asset-console/internal/service"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	result, err := h.service.Login(service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		User: dto.UserResponse{
			ID:         result.User.ID,
			Name:       result.User.Name,
			Email:      result.User.Email,
			Role:       result.User.Role,
			CustomerID: result.User.CustomerID,
		},
		Token: result.Token,
	}})
}
