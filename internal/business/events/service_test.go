package events

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/dbtest"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type eventsRepositoryMock struct {
	CreatePersonalEventFunc  func(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error
	CreateGroupEventFunc     func(ctx context.Context, q database.Queryable, event *model.GroupEvent) error
	GetEventByIDFunc         func(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error)
	GetPersonalEventByIDFunc func(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.PersonalEvent, error)
	GetGroupEventByIDFunc    func(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.GroupEvent, error)
	GetUserEventsFunc        func(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]*model.Event, error)
	UpdateEventFunc          func(ctx context.Context, q database.Queryable, event *model.Event) error
	UpdatePersonalEventFunc  func(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error
}

func (m *eventsRepositoryMock) CreatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error {
	return m.CreatePersonalEventFunc(ctx, q, event)
}

func (m *eventsRepositoryMock) CreateGroupEvent(ctx context.Context, q database.Queryable, event *model.GroupEvent) error {
	return m.CreateGroupEventFunc(ctx, q, event)
}

func (m *eventsRepositoryMock) GetEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error) {
	return m.GetEventByIDFunc(ctx, q, id)
}

func (m *eventsRepositoryMock) GetPersonalEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.PersonalEvent, error) {
	return m.GetPersonalEventByIDFunc(ctx, q, id)
}

func (m *eventsRepositoryMock) GetGroupEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.GroupEvent, error) {
	return m.GetGroupEventByIDFunc(ctx, q, id)
}

func (m *eventsRepositoryMock) GetUserEvents(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]*model.Event, error) {
	return m.GetUserEventsFunc(ctx, q, userID)
}

func (m *eventsRepositoryMock) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	return m.UpdateEventFunc(ctx, q, event)
}

func (m *eventsRepositoryMock) UpdatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error {
	return m.UpdatePersonalEventFunc(ctx, q, event)
}

type attendeesRepositoryMock struct {
	CreateAttendeeFunc     func(ctx context.Context, q database.Queryable, attendee *model.Attendee) error
	GetAttendeeUserIDsFunc func(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]uuid.UUID, error)
}

func (m *attendeesRepositoryMock) CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) error {
	return m.CreateAttendeeFunc(ctx, q, attendee)
}

func (m *attendeesRepositoryMock) GetAttendeeUserIDs(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]uuid.UUID, error) {
	return m.GetAttendeeUserIDsFunc(ctx, q, eventID)
}

type invitationsRepositoryMock struct {
	CreateInvitationFunc     func(ctx context.Context, q database.Queryable, invitation *model.Invitation) error
	HasPendingInvitationFunc func(ctx context.Context, q database.Queryable, eventID, userID uuid.UUID) (bool, error)
}

func (m *invitationsRepositoryMock) CreateInvitation(ctx context.Context, q database.Queryable, invitation *model.Invitation) error {
	return m.CreateInvitationFunc(ctx, q, invitation)
}

func (m *invitationsRepositoryMock) HasPendingInvitation(ctx context.Context, q database.Queryable, eventID, userID uuid.UUID) (bool, error) {
	return m.HasPendingInvitationFunc(ctx, q, eventID, userID)
}

type friendshipsRepositoryMock struct {
	AreFriendsFunc func(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error)
}

func (m *friendshipsRepositoryMock) AreFriends(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error) {
	return m.AreFriendsFunc(ctx, q, userID, friendID)
}

type outboxRepositoryMock struct{}

func (outboxRepositoryMock) CreateMessages(context.Context, database.Queryable, []*integration.Message) error {
	return nil
}

func (outboxRepositoryMock) MarkProcessed(context.Context, database.Queryable, []uuid.UUID, time.Time) error {
	return nil
}

type publisherMock struct{}

func (publisherMock) Publish(context.Context, *integration.Message) error {
	return nil
}

type testService struct {
	*Service
	db          *dbtest.PGX
	events      *eventsRepositoryMock
	attendees   *attendeesRepositoryMock
	invitations *invitationsRepositoryMock
	friendships *friendshipsRepositoryMock
}

func newTestService() *testService {
	ts := &testService{
		db:          &dbtest.PGX{},
		events:      &eventsRepositoryMock{},
		attendees:   &attendeesRepositoryMock{},
		invitations: &invitationsRepositoryMock{},
		friendships: &friendshipsRepositoryMock{},
	}

	u := uow.New(ts.db, dispatch.NewDispatcher(), outboxRepositoryMock{}, publisherMock{}, zap.NewNop().Sugar())
	ts.Service = NewService(ts.db, u, ts.events, ts.attendees, ts.invitations, ts.friendships)

	return ts
}

func TestService_CreateGroupEvent(t *testing.T) {
	t.Parallel()

	ts := newTestService()
	ownerID := uuid.New()

	var stored *model.GroupEvent
	ts.events.CreateGroupEventFunc = func(_ context.Context, _ database.Queryable, event *model.GroupEvent) error {
		stored = event
		return nil
	}
	var attendee *model.Attendee
	ts.attendees.CreateAttendeeFunc = func(_ context.Context, _ database.Queryable, a *model.Attendee) error {
		attendee = a
		return nil
	}

	event, err := ts.CreateGroupEvent(context.Background(), &model.EventCreate{
		UserID:      ownerID,
		Name:        "Party",
		Category:    model.EventCategoryBirthday,
		DateTimeUTC: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	assert.Same(t, stored, event)
	assert.Equal(t, model.EventKindGroup, event.Kind)
	require.NotNil(t, attendee)
	assert.Equal(t, event.ID, attendee.EventID)
	assert.Equal(t, ownerID, attendee.UserID)
	assert.True(t, ts.db.LastTx().Committed())
}

func TestService_CreatePersonalEventInPast(t *testing.T) {
	t.Parallel()

	ts := newTestService()

	_, err := ts.CreatePersonalEvent(context.Background(), &model.EventCreate{
		UserID:      uuid.New(),
		Name:        "Dentist",
		DateTimeUTC: time.Now().Add(-time.Minute),
	})
	require.ErrorIs(t, err, model.ErrDateTimeInPast)

	assert.False(t, ts.db.LastTx().Committed())
	assert.True(t, ts.db.LastTx().RolledBack())
}

func TestService_CancelEvent(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	newEvent := func() *model.Event {
		return &model.NewGroupEvent(model.EventCreate{
			UserID:      ownerID,
			Name:        "Party",
			DateTimeUTC: time.Now().Add(time.Hour),
		}, time.Now()).Event
	}

	t.Run("owner", func(t *testing.T) {
		t.Parallel()

		ts := newTestService()
		event := newEvent()
		ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
			return event, nil
		}
		var updated *model.Event
		ts.events.UpdateEventFunc = func(_ context.Context, _ database.Queryable, e *model.Event) error {
			updated = e
			return nil
		}

		require.NoError(t, ts.CancelEvent(context.Background(), ownerID, event.ID))

		require.NotNil(t, updated)
		assert.True(t, updated.Cancelled)
		assert.NotNil(t, updated.ModifiedOnUTC)
		assert.True(t, ts.db.LastTx().Committed())
	})

	t.Run("not owner", func(t *testing.T) {
		t.Parallel()

		ts := newTestService()
		event := newEvent()
		ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
			return event, nil
		}

		err := ts.CancelEvent(context.Background(), uuid.New(), event.ID)
		require.ErrorIs(t, err, model.ErrForbidden)
		assert.False(t, event.Cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		t.Parallel()

		ts := newTestService()
		event := newEvent()
		event.Cancelled = true
		ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
			return event, nil
		}

		err := ts.CancelEvent(context.Background(), ownerID, event.ID)
		require.ErrorIs(t, err, model.ErrEventAlreadyCancelled)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		ts := newTestService()
		ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
			return nil, model.ErrNoRecord
		}

		err := ts.CancelEvent(context.Background(), ownerID, uuid.New())
		require.ErrorIs(t, err, model.ErrNoRecord)
	})
}

func TestService_ChangeEventName(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	event := &model.NewPersonalEvent(model.EventCreate{
		UserID:      ownerID,
		Name:        "Gym",
		DateTimeUTC: time.Now().Add(time.Hour),
	}, time.Now()).Event

	ts := newTestService()
	ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
		return event, nil
	}
	updates := 0
	ts.events.UpdateEventFunc = func(context.Context, database.Queryable, *model.Event) error {
		updates++
		return nil
	}

	require.NoError(t, ts.ChangeEventName(context.Background(), ownerID, event.ID, "Gym"))
	assert.Equal(t, 0, updates)

	require.NoError(t, ts.ChangeEventName(context.Background(), ownerID, event.ID, "Swimming"))
	assert.Equal(t, 1, updates)
	assert.Equal(t, "Swimming", event.Name)
}

func TestService_ChangePersonalEventDateAndTime(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	personal := model.NewPersonalEvent(model.EventCreate{
		UserID:      ownerID,
		Name:        "Gym",
		DateTimeUTC: time.Now().Add(time.Hour),
	}, time.Now())
	personal.Processed = true

	ts := newTestService()
	ts.events.GetEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.Event, error) {
		e := personal.Event
		return &e, nil
	}
	ts.events.GetPersonalEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.PersonalEvent, error) {
		return personal, nil
	}
	var updated *model.PersonalEvent
	ts.events.UpdatePersonalEventFunc = func(_ context.Context, _ database.Queryable, e *model.PersonalEvent) error {
		updated = e
		return nil
	}

	err := ts.ChangeEventDateAndTime(context.Background(), ownerID, personal.ID, time.Now().Add(-time.Hour))
	require.ErrorIs(t, err, model.ErrDateTimeInPast)
	assert.Nil(t, updated)

	at := time.Now().Add(72 * time.Hour).UTC()
	require.NoError(t, ts.ChangeEventDateAndTime(context.Background(), ownerID, personal.ID, at))

	require.NotNil(t, updated)
	assert.True(t, at.Equal(updated.DateTimeUTC))
	assert.False(t, updated.Processed)
}

func TestService_InviteUser(t *testing.T) {
	t.Parallel()

	ownerID, friendID := uuid.New(), uuid.New()
	group := model.NewGroupEvent(model.EventCreate{
		UserID:      ownerID,
		Name:        "Party",
		DateTimeUTC: time.Now().Add(time.Hour),
	}, time.Now())

	tests := []struct {
		name    string
		ownerID uuid.UUID
		friends bool
		pending bool
		wantErr error
	}{
		{name: "invited", ownerID: ownerID, friends: true},
		{name: "not owner", ownerID: uuid.New(), friends: true, wantErr: model.ErrForbidden},
		{name: "not friends", ownerID: ownerID, wantErr: model.ErrNotFriends},
		{name: "pending", ownerID: ownerID, friends: true, pending: true, wantErr: model.ErrInvitationPending},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService()
			ts.events.GetGroupEventByIDFunc = func(context.Context, database.Queryable, uuid.UUID) (*model.GroupEvent, error) {
				return model.NewGroupEvent(group.EventCreate, time.Now()), nil
			}
			ts.friendships.AreFriendsFunc = func(context.Context, database.Queryable, uuid.UUID, uuid.UUID) (bool, error) {
				return tt.friends, nil
			}
			ts.invitations.HasPendingInvitationFunc = func(context.Context, database.Queryable, uuid.UUID, uuid.UUID) (bool, error) {
				return tt.pending, nil
			}
			created := 0
			ts.invitations.CreateInvitationFunc = func(context.Context, database.Queryable, *model.Invitation) error {
				created++
				return nil
			}

			invitation, err := ts.InviteUser(context.Background(), tt.ownerID, group.ID, friendID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, friendID, invitation.UserID)
			assert.Equal(t, 1, created)
		})
	}
}
