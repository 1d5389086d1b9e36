// Package worker reacts to integration events delivered through the queue.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type usersRepository interface {
	GetUserByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.User, error)
	GetUsersByIDs(ctx context.Context, q database.Queryable, ids []uuid.UUID) ([]*model.User, error)
}

type eventsRepository interface {
	GetEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error)
}

type attendeesRepository interface {
	GetAttendeeUserIDs(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]uuid.UUID, error)
}

type mailSender interface {
	SendEventCancelled(ctx context.Context, to *model.User, eventName string, dateTimeUTC time.Time) error
	SendEventRescheduled(ctx context.Context, to *model.User, event *model.Event, previousDateTimeUTC time.Time) error
	SendEventRenamed(ctx context.Context, to *model.User, event *model.Event, previousName string) error
	SendInvitation(ctx context.Context, to, from *model.User, event *model.Event) error
	SendFriendshipRequest(ctx context.Context, to, from *model.User) error
	SendFriendshipAccepted(ctx context.Context, to, friend *model.User) error
}

type Worker struct {
	db        database.PGX
	logger    *zap.SugaredLogger
	users     usersRepository
	events    eventsRepository
	attendees attendeesRepository
	mail      mailSender
}

func New(
	db database.PGX,
	logger *zap.SugaredLogger,
	users usersRepository,
	events eventsRepository,
	attendees attendeesRepository,
	mail mailSender,
) *Worker {
	return &Worker{
		db:        db,
		logger:    logger,
		users:     users,
		events:    events,
		attendees: attendees,
		mail:      mail,
	}
}

// Handle processes one queued message. Messages that can never be handled are
// logged and dropped. Any returned error means the message must be delivered
// again, a missing user or event included.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	m, err := integration.DecodeMessage(body)
	if err != nil {
		w.logger.Errorw("dropping undecodable message", "err", err)
		return nil
	}

	event, err := m.Event()
	if err != nil {
		w.logger.Errorw("dropping message", "id", m.ID, "type", m.Type, "err", err)
		return nil
	}

	w.logger.Debugw("handling integration event", "id", m.ID, "type", m.Type)

	switch e := event.(type) {
	case integration.EventCancelled:
		err = w.onEventCancelled(ctx, e)
	case integration.EventDateAndTimeChanged:
		err = w.onEventDateAndTimeChanged(ctx, e)
	case integration.EventNameChanged:
		err = w.onEventNameChanged(ctx, e)
	case integration.InvitationSent:
		err = w.onInvitationSent(ctx, e)
	case integration.FriendshipRequestSent:
		err = w.onFriendshipRequestSent(ctx, e)
	case integration.FriendshipRequestAccepted:
		err = w.onFriendshipRequestAccepted(ctx, e)
	default:
		w.logger.Errorw("no handler for integration event", "id", m.ID, "type", m.Type)
		return nil
	}

	if err != nil {
		return fmt.Errorf("handle %s %v: %w", m.Type, m.ID, err)
	}

	return nil
}

func (w *Worker) onEventCancelled(ctx context.Context, e integration.EventCancelled) error {
	users, err := w.getUsers(ctx, e.AttendeeIDs)
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := w.mail.SendEventCancelled(ctx, u, e.Name, e.DateTimeUTC); err != nil {
			return fmt.Errorf("mail.SendEventCancelled: %w", err)
		}
	}

	return nil
}

func (w *Worker) onEventDateAndTimeChanged(ctx context.Context, e integration.EventDateAndTimeChanged) error {
	event, users, err := w.getEventAndGuests(ctx, e.EventID)
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := w.mail.SendEventRescheduled(ctx, u, event, e.PreviousDateTimeUTC); err != nil {
			return fmt.Errorf("mail.SendEventRescheduled: %w", err)
		}
	}

	return nil
}

func (w *Worker) onEventNameChanged(ctx context.Context, e integration.EventNameChanged) error {
	event, users, err := w.getEventAndGuests(ctx, e.EventID)
	if err != nil {
		return err
	}

	for _, u := range users {
		if err := w.mail.SendEventRenamed(ctx, u, event, e.PreviousName); err != nil {
			return fmt.Errorf("mail.SendEventRenamed: %w", err)
		}
	}

	return nil
}

func (w *Worker) onInvitationSent(ctx context.Context, e integration.InvitationSent) error {
	event, err := w.events.GetEventByID(ctx, w.db, e.EventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	invitee, err := w.users.GetUserByID(ctx, w.db, e.UserID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	owner, err := w.users.GetUserByID(ctx, w.db, event.UserID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	if err := w.mail.SendInvitation(ctx, invitee, owner, event); err != nil {
		return fmt.Errorf("mail.SendInvitation: %w", err)
	}

	return nil
}

func (w *Worker) onFriendshipRequestSent(ctx context.Context, e integration.FriendshipRequestSent) error {
	from, err := w.users.GetUserByID(ctx, w.db, e.UserID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	to, err := w.users.GetUserByID(ctx, w.db, e.FriendID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	if err := w.mail.SendFriendshipRequest(ctx, to, from); err != nil {
		return fmt.Errorf("mail.SendFriendshipRequest: %w", err)
	}

	return nil
}

func (w *Worker) onFriendshipRequestAccepted(ctx context.Context, e integration.FriendshipRequestAccepted) error {
	requester, err := w.users.GetUserByID(ctx, w.db, e.UserID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	friend, err := w.users.GetUserByID(ctx, w.db, e.FriendID)
	if err != nil {
		return fmt.Errorf("usersRepository.GetUserByID: %w", err)
	}

	if err := w.mail.SendFriendshipAccepted(ctx, requester, friend); err != nil {
		return fmt.Errorf("mail.SendFriendshipAccepted: %w", err)
	}

	return nil
}

// getEventAndGuests returns the event and its attendees without the owner.
func (w *Worker) getEventAndGuests(ctx context.Context, eventID uuid.UUID) (*model.Event, []*model.User, error) {
	event, err := w.events.GetEventByID(ctx, w.db, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	ids, err := w.attendees.GetAttendeeUserIDs(ctx, w.db, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("attendeesRepository.GetAttendeeUserIDs: %w", err)
	}

	guests := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != event.UserID {
			guests = append(guests, id)
		}
	}

	users, err := w.getUsers(ctx, guests)
	if err != nil {
		return nil, nil, err
	}

	return event, users, nil
}

// getUsers fails with model.ErrNoRecord unless every user is found.
func (w *Worker) getUsers(ctx context.Context, ids []uuid.UUID) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := w.users.GetUsersByIDs(ctx, w.db, ids)
	if err != nil {
		return nil, fmt.Errorf("usersRepository.GetUsersByIDs: %w", err)
	}

	if len(users) != len(ids) {
		return nil, fmt.Errorf("%d of %d users: %w", len(users), len(ids), model.ErrNoRecord)
	}

	return users, nil
}
