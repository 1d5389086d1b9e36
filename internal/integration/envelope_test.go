package integration

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_RoundTripKeepsType(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	events := []Event{
		EventCancelled{
			EventID:     uuid.New(),
			Name:        "Concert",
			DateTimeUTC: now.Add(time.Hour),
			AttendeeIDs: []uuid.UUID{uuid.New(), uuid.New()},
		},
		EventNameChanged{EventID: uuid.New(), PreviousName: "Gig"},
		EventDateAndTimeChanged{EventID: uuid.New(), PreviousDateTimeUTC: now, DateTimeUTC: now.Add(time.Hour)},
		InvitationSent{InvitationID: uuid.New(), EventID: uuid.New(), UserID: uuid.New()},
		FriendshipRequestSent{RequestID: uuid.New(), UserID: uuid.New(), FriendID: uuid.New()},
		FriendshipRequestAccepted{RequestID: uuid.New(), UserID: uuid.New(), FriendID: uuid.New()},
	}

	for _, e := range events {
		e := e
		t.Run(string(e.IntegrationType()), func(t *testing.T) {
			t.Parallel()

			m, err := NewMessage(e, now)
			require.NoError(t, err)
			assert.Equal(t, e.IntegrationType(), m.Type)
			assert.Equal(t, now, m.OccurredOnUTC)

			data, err := m.Encode()
			require.NoError(t, err)

			decoded, err := DecodeMessage(data)
			require.NoError(t, err)
			assert.Equal(t, m.ID, decoded.ID)

			got, err := decoded.Event()
			require.NoError(t, err)
			assert.Equal(t, e, got)
		})
	}
}

func TestMessage_UnknownType(t *testing.T) {
	t.Parallel()

	m, err := DecodeMessage([]byte(`{"id":"6f1c1a4e-8f7c-4a55-9d7a-1a1f2f0b3c11","type":"Unknown","payload":{}}`))
	require.NoError(t, err)

	_, err = m.Event()
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeMessage_Garbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeMessage([]byte("not json"))
	assert.Error(t, err)
}
