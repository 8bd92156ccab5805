package auth_test

import (
	"testing"
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	manager, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()

		token, err := manager.Issue(userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := auth.NewManager("other-secret", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(uuid.New())
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, err := auth.NewManager("test-secret", time.Nanosecond)
		require.NoError(t, err)

		token, err := shortLived.Issue(uuid.New())
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})
}

func TestNewManager(t *testing.T) {
	_, err := auth.NewManager("", time.Hour)
	require.EqualError(t, err, "jwt secret is empty")

	// a non-positive ttl falls back to the default
	manager, err := auth.NewManager("secret", 0)
	require.NoError(t, err)

	token, err := manager.Issue(uuid.New())
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.NoError(t, err)
}
