package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/config"
	"github.com/qztech/asset-console/internal/domain"
)

func newAuthFixture() *AuthService {
	return NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	})
}

func TestCustomerLoginResolvesCompanyFromDomain(t *testing.T) {
	svc := newAuthFixture()

	result, err := svc.Login(LoginInput{Email: "someone@example2.com", Role: domain.RoleCustomer})
	require.NoError(t, err)
	require.Equal(t, domain.RoleCustomer, result.User.Role)
	require.Equal(t, 2, result.User.CustomerID)
	require.NotEmpty(t, result.Token)

	claims, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleCustomer, claims.Role)
	require.Equal(t, 2, claims.CustomerID)
}

func TestCustomerLoginUnknownDomainFails(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Login(LoginInput{Email: "someone@nowhere.invalid", Role: domain.RoleCustomer})
	require.Error(t, err)
}

func TestStaffLoginVerifiesPassword(t *testing.T) {
	svc := newAuthFixture()

	result, err := svc.Login(LoginInput{
		Email:    "admin@qztech.example",
		Password: "demo-password",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, "管理員", result.User.Name)

	_, err = svc.Login(LoginInput{
		Email:    "admin@qztech.example",
		Password: "wrong",
		Role:     domain.RoleAdmin,
	})
	require.Error(t, err)
}

func TestStaffLoginRoleMismatchFails(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Login(LoginInput{
		Email:    "chang@qztech.example",
		Password: "demo-password",
		Role:     domain.RoleAdmin,
	})
	require.Error(t, err)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Login(LoginInput{Email: "a@example1.com", Role: domain.Role("root")})
	require.Error(t, err)
}
