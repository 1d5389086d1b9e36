package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/dbtest"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type outboxRepositoryMock struct {
	GetUnprocessedMessagesFunc func(ctx context.Context, q database.Queryable, take int) ([]*integration.Message, error)

	processed []uuid.UUID
	failed    map[uuid.UUID]string
}

func (m *outboxRepositoryMock) GetUnprocessedMessages(ctx context.Context, q database.Queryable, take int) ([]*integration.Message, error) {
	return m.GetUnprocessedMessagesFunc(ctx, q, take)
}

func (m *outboxRepositoryMock) MarkProcessed(_ context.Context, _ database.Queryable, ids []uuid.UUID, _ time.Time) error {
	m.processed = append(m.processed, ids...)
	return nil
}

func (m *outboxRepositoryMock) MarkFailed(_ context.Context, _ database.Queryable, id uuid.UUID, reason string) error {
	if m.failed == nil {
		m.failed = make(map[uuid.UUID]string)
	}
	m.failed[id] = reason
	return nil
}

type publisherMock struct {
	PublishFunc func(ctx context.Context, message *integration.Message) error
}

func (m *publisherMock) Publish(ctx context.Context, message *integration.Message) error {
	return m.PublishFunc(ctx, message)
}

func newMessage(t *testing.T) *integration.Message {
	t.Helper()

	m, err := integration.NewMessage(integration.InvitationSent{InvitationID: uuid.New()}, time.Now())
	require.NoError(t, err)
	return m
}

func TestRelay_PublishesPendingMessages(t *testing.T) {
	t.Parallel()

	ok, broken := newMessage(t), newMessage(t)

	repo := &outboxRepositoryMock{
		GetUnprocessedMessagesFunc: func(_ context.Context, _ database.Queryable, take int) ([]*integration.Message, error) {
			assert.Equal(t, 10, take)
			return []*integration.Message{ok, broken}, nil
		},
	}
	publisher := &publisherMock{
		PublishFunc: func(_ context.Context, m *integration.Message) error {
			if m.ID == broken.ID {
				return errors.New("connection refused")
			}
			return nil
		},
	}
	db := &dbtest.PGX{}

	n, err := NewRelay(db, repo, publisher, zap.NewNop().Sugar()).Relay(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, []uuid.UUID{ok.ID}, repo.processed)
	assert.Equal(t, map[uuid.UUID]string{broken.ID: "connection refused"}, repo.failed)
	assert.True(t, db.LastTx().Committed())
}

func TestRelay_NothingPending(t *testing.T) {
	t.Parallel()

	repo := &outboxRepositoryMock{
		GetUnprocessedMessagesFunc: func(context.Context, database.Queryable, int) ([]*integration.Message, error) {
			return nil, nil
		},
	}
	db := &dbtest.PGX{}

	n, err := NewRelay(db, repo, &publisherMock{}, zap.NewNop().Sugar()).Relay(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, db.LastTx().Committed())
}
