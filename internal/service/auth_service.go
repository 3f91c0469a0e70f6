package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/qztech/asset-console/internal/auth"
	"github.com/qztech/asset-console/internal/config"
	"github.com/qztech/asset-console/internal/domain"
	apperrors "github.com/qztech/asset-console/pkg/util"
)

// domainToCustomerID resolves a customer login to their company by email
// domain. Demo data only.
var domainToCustomerID = map[string]int{
	"qztech.com.tw":          1,
	"innovasoft.com.tw":      2,
	"futuretech.com.tw":      3,
	"smart-solutions.com.tw": 4,
	"example1.com":           1,
	"example2.com":           2,
	"example3.com":           3,
	"example4.com":           4,
}

// staffAccount is a seeded admin/technician login.
type staffAccount struct {
	Email        string
	Name         string
	Role         domain.Role
	PasswordHash string
}

// AuthService issues bearer tokens for the three console roles.
type AuthService struct {
	tokens *auth.TokenManager
	staff  map[string]staffAccount
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string
	Password string
	Role     domain.Role
}

// LoginResult carries the issued token and resolved user.
type LoginResult struct {
	User  domain.User
	Token string
}

// NewAuthService constructs the service and seeds staff accounts. The
// default staff password is for the demo dataset only.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	svc := &AuthService{
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		staff:  map[string]staffAccount{},
	}

	cost := cfg.BcryptCost
	seed := []struct {
		email string
		name  string
		role  domain.Role
	}{
		{email: "admin@qztech.example", name: "管理員", role: domain.RoleAdmin},
		{email: "chang@qztech.example", name: "張工程師", role: domain.RoleTechnician},
		{email: "lee@qztech.example", name: "李工程師", role: domain.RoleTechnician},
		{email: "wang@qztech.example", name: "王技術員", role: domain.RoleTechnician},
	}
	for _, acct := range seed {
		hash, err := auth.HashPassword("demo-password", cost)
		if err != nil {
			continue
		}
		svc.staff[acct.email] = staffAccount{
			Email:        acct.email,
			Name:         acct.name,
			Role:         acct.role,
			PasswordHash: hash,
		}
	}
	return svc
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login resolves the caller and signs a token. Customer logins resolve
// their company from the email domain and skip password verification
// (demo parity); staff logins verify against the seeded bcrypt hashes.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(input.Role)})
	}

	user := domain.User{
		ID:    "u-" + uuid.NewString()[:8],
		Email: input.Email,
		Role:  role,
	}

	switch role {
	case domain.RoleCustomer:
		customerID, ok := domainToCustomerID[extractDomain(input.Email)]
		if !ok {
			return nil, apperrors.NewValidationError("unable to determine company from email", nil)
		}
		user.CustomerID = customerID
		user.Name = "客戶-" + input.Email
	default:
		acct, ok := s.staff[strings.ToLower(strings.TrimSpace(input.Email))]
		if !ok {
			return nil, apperrors.NewUnauthorized("unknown staff account")
		}
		if err := auth.ComparePassword(acct.PasswordHash, input.Password); err != nil {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		if acct.Role != role {
			return nil, apperrors.NewForbidden("role mismatch for account")
		}
		user.Name = acct.Name
	}

	token, _, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{User: user, Token: token}, nil
}

func extractDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
