package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/auth"
	"github.com/qztech/asset-console/internal/domain"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// actorFromContext resolves the authenticated principal into a domain user.
func actorFromContext(c *fiber.Ctx) (domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return domain.User{}, apperrors.NewUnauthorized("authentication required")
	}
	return domain.User{
		ID:         principal.ID,
		Name:       principal.Name,
		Email:      principal.Email,
		Role:       principal.Role,
		CustomerID: principal.CustomerID,
	}, nil
}

// idParam parses the :id route parameter as an integer.
func idParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
