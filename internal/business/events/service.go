package events

import (
	"context"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type Service struct {
	db          database.PGX
	uow         unitOfWork
	events      eventsRepository
	attendees   attendeesRepository
	invitations invitationsRepository
	friendships friendshipsRepository
}

type unitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, s *uow.Session) error) error
}

type eventsRepository interface {
	CreatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error
	CreateGroupEvent(ctx context.Context, q database.Queryable, event *model.GroupEvent) error
	GetEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error)
	GetPersonalEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.PersonalEvent, error)
	GetGroupEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.GroupEvent, error)
	GetUserEvents(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	UpdatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error
}

type attendeesRepository interface {
	CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) error
	GetAttendeeUserIDs(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]uuid.UUID, error)
}

type invitationsRepository interface {
	CreateInvitation(ctx context.Context, q database.Queryable, invitation *model.Invitation) error
	HasPendingInvitation(ctx context.Context, q database.Queryable, eventID, userID uuid.UUID) (bool, error)
}

type friendshipsRepository interface {
	AreFriends(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error)
}

func NewService(
	db database.PGX,
	uow unitOfWork,
	events eventsRepository,
	attendees attendeesRepository,
	invitations invitationsRepository,
	friendships friendshipsRepository,
) *Service {
	return &Service{
		db:          db,
		uow:         uow,
		events:      events,
		attendees:   attendees,
		invitations: invitations,
		friendships: friendships,
	}
}

func checkFuture(dateTimeUTC, utcNow time.Time) error {
	if !dateTimeUTC.After(utcNow) {
		return model.ErrDateTimeInPast
	}
	return nil
}
