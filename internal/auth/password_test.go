package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	// bcrypt rejects costs above 31; the helper falls back to the default.
	hash, err := HashPassword("demo-password", 99)
	require.NoError(t, err)
	require.NoError(t, ComparePassword(hash, "demo-password"))
	require.Error(t, ComparePassword(hash, "wrong-password"))
}
