package security

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Hash(t *testing.T) {
	ctx := context.Background()
	h := NewHasher()

	t.Run("hash differs from plaintext and verifies", func(t *testing.T) {
		hash, err := h.Hash(ctx, "Secret#123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NotEqual(t, "Secret#123", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.NoError(t, h.Verify(hash, "Secret#123"))
	})

	t.Run("same password hashes to different values", func(t *testing.T) {
		first, err := h.Hash(ctx, "Secret#123")
		require.NoError(t, err)
		second, err := h.Hash(ctx, "Secret#123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		hash, err := h.Hash(ctx, "")
		require.ErrorIs(t, err, ErrEmptyPassword)
		assert.Empty(t, hash)
	})

	t.Run("cancelled context rejected", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		hash, err := h.Hash(cancelled, "Secret#123")
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, hash)
	})
}

func TestHasher_Verify(t *testing.T) {
	ctx := context.Background()
	h := NewHasher()

	hash, err := h.Hash(ctx, "Secret#123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		hash    string
		plain   string
		wantErr error
	}{
		{name: "matching password", hash: hash, plain: "Secret#123", wantErr: nil},
		{name: "wrong password", hash: hash, plain: "Wrong#123", wantErr: bcrypt.ErrMismatchedHashAndPassword},
		{name: "empty plaintext", hash: hash, plain: "", wantErr: ErrEmptyPassword},
		{name: "empty hash", hash: "", plain: "Secret#123", wantErr: ErrEmptyHash},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify(tt.hash, tt.plain)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
