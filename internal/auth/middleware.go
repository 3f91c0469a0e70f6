package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/qztech/asset-console/internal/domain"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. The token payload is
// trusted as-is; there is no lookup against an account store.
type Principal struct {
	ID         string
	Name       string
	Email      string
	Role       domain.Role
	CustomerID int
}

// Middleware validates bearer tokens and stores the principal in request
// locals.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{
		ID:         claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Role:       claims.Role,
		CustomerID: claims.CustomerID,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
