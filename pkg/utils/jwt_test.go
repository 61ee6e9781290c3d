package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundtrip(t *testing.T) {
	m := NewJWTManager("test-secret", "inkwell")

	token, err := m.GenerateToken("tenant-1", "user-1", "admin", "demo", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "demo", claims.Subdomain)
	assert.Equal(t, "inkwell", claims.Issuer)
}

func TestJWTManagerParseErrors(t *testing.T) {
	m := NewJWTManager("test-secret", "inkwell")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := m.GenerateToken("tenant-1", "user-1", "admin", "demo", time.Hour)
		require.NoError(t, err)

		other := NewJWTManager("different-secret", "inkwell")
		_, err = other.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := m.GenerateToken("tenant-1", "user-1", "admin", "demo", -time.Minute)
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
