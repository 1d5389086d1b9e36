package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scopeMock struct{}

func (scopeMock) Tx() database.Queryable { return nil }
func (scopeMock) Now() time.Time { return time.Time{} }
func (scopeMock) Track(model.Aggregate) {}
func (scopeMock) Publish(integration.Event) {}

func TestDispatcher_RunsHandlersInRegistrationOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	handler := func(name string) HandlerFunc {
		return func(_ context.Context, _ Scope, _ model.DomainEvent) error {
			calls = append(calls, name)
			return nil
		}
	}

	d := NewDispatcher()
	d.Register(model.EventCancelledName, handler("first"))
	d.Register(model.EventCancelledName, handler("second"))
	d.Register(model.EventNameChangedName, handler("other"))

	err := d.Dispatch(context.Background(), scopeMock{}, model.EventCancelled{EventID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	failure := errors.New("boom")
	secondCalled := false

	d := NewDispatcher()
	d.Register(model.InvitationSentName, func(context.Context, Scope, model.DomainEvent) error {
		return failure
	})
	d.Register(model.InvitationSentName, func(context.Context, Scope, model.DomainEvent) error {
		secondCalled = true
		return nil
	})

	err := d.Dispatch(context.Background(), scopeMock{}, model.InvitationSent{})
	assert.ErrorIs(t, err, failure)
	assert.False(t, secondCalled)
}

func TestDispatcher_IgnoresEventsWithoutHandlers(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	assert.NoError(t, d.Dispatch(context.Background(), scopeMock{}, model.FriendshipRequestRejected{}))
}
