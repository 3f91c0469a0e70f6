package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qztech/asset-console/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expires, err := tm.GenerateToken(domain.User{
		ID:         "u-abc123",
		Name:       "客戶-user@example1.com",
		Email:      "user@example1.com",
		Role:       domain.RoleCustomer,
		CustomerID: 1,
	})
	require.NoError(t, err)
	require.False(t, expires.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "u-abc123", claims.Subject)
	require.Equal(t, domain.RoleCustomer, claims.Role)
	require.Equal(t, 1, claims.CustomerID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 60)
	other := NewTokenManager("secret-b", 60)

	token, _, err := tm.GenerateToken(domain.User{ID: "u-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	token, _, err := tm.GenerateToken(domain.User{ID: "u-1", Role: domain.Role("superuser")})
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hashed, "s3cret"))
	require.Error(t, ComparePassword(hashed, "wrong"))
}
