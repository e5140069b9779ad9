package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/jwt"
)

func TestAuthService_GenerateToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret#123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &domain.User{
		ID:          7,
		Email:       "alice@example.com",
		Password:    string(hash),
		IsSuperuser: true,
	}

	jwtService := jwt.New("test-secret")
	as := NewAuthService(jwtService)

	t.Run("matching password yields valid token", func(t *testing.T) {
		tok, err := as.GenerateToken(u, "Secret#123")
		require.NoError(t, err)
		require.NotEmpty(t, tok)

		claims, err := jwtService.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), claims.UserID)
		assert.True(t, claims.Superuser)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		tok, err := as.GenerateToken(u, "Wrong#123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, tok)
	})

	t.Run("plaintext never accepted as hash", func(t *testing.T) {
		plain := &domain.User{ID: 8, Password: "Secret#123"}
		tok, err := as.GenerateToken(plain, "Secret#123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, tok)
	})
}
