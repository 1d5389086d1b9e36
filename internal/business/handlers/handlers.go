// Package handlers keeps related records consistent with event, invitation
// and friendship changes. Handlers run inside the transaction of the change.
package handlers

import (
	"context"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type eventsRepository interface {
	GetEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error)
	MarkPersonalEventUnprocessed(ctx context.Context, q database.Queryable, id uuid.UUID, utcNow time.Time) error
}

type attendeesRepository interface {
	CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) error
	MarkAttendeesUnprocessed(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) error
	RemoveAttendees(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) ([]uuid.UUID, error)
}

type notificationsRepository interface {
	RemoveUnsentNotifications(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) (int64, error)
}

type invitationsRepository interface {
	RemovePendingInvitations(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) (int64, error)
}

type friendshipsRepository interface {
	CreateFriendships(ctx context.Context, q database.Queryable, pair [2]*model.Friendship) error
}

type Handlers struct {
	events        eventsRepository
	attendees     attendeesRepository
	notifications notificationsRepository
	invitations   invitationsRepository
	friendships   friendshipsRepository
}

func New(
	events eventsRepository,
	attendees attendeesRepository,
	notifications notificationsRepository,
	invitations invitationsRepository,
	friendships friendshipsRepository,
) *Handlers {
	return &Handlers{
		events:        events,
		attendees:     attendees,
		notifications: notifications,
		invitations:   invitations,
		friendships:   friendships,
	}
}

// Register binds every handler to its domain event.
func (h *Handlers) Register(d *dispatch.Dispatcher) {
	d.Register(model.EventCancelledName, h.onEventCancelled)
	d.Register(model.EventDateAndTimeChangedName, h.onEventDateAndTimeChanged)
	d.Register(model.EventNameChangedName, h.onEventNameChanged)
	d.Register(model.InvitationSentName, h.onInvitationSent)
	d.Register(model.InvitationAcceptedName, h.onInvitationAccepted)
	d.Register(model.FriendshipRequestSentName, h.onFriendshipRequestSent)
	d.Register(model.FriendshipRequestAcceptedName, h.onFriendshipRequestAccepted)
}
