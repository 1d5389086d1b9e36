package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := NewManager("secret", time.Minute)
	require.NoError(t, err)

	id := uuid.New()
	token, err := m.CreateToken(id)
	require.NoError(t, err)

	got, err := m.GetIdFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestManager_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	other, err := NewManager("another secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.CreateToken(uuid.New())
	require.NoError(t, err)

	expiredManager, err := NewManager("secret", time.Hour)
	require.NoError(t, err)
	expiredManager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredManager.CreateToken(uuid.New())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.GetIdFromToken(token)

			var invalid *InvalidTokenError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewManager("", time.Minute)
	assert.Error(t, err)
}
