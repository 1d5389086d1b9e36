// Package notifications materializes reminders for upcoming events and sends
// the ones that are due.
package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type attendeesRepository interface {
	GetUnprocessedAttendees(ctx context.Context, q database.Queryable, take int) ([]*model.Attendee, error)
	ClaimAttendees(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) ([]uuid.UUID, error)
}

type eventsRepository interface {
	GetGroupEventsByIDs(ctx context.Context, q database.Queryable, ids []uuid.UUID) ([]*model.GroupEvent, error)
	GetUnprocessedPersonalEvents(ctx context.Context, q database.Queryable, take int) ([]*model.PersonalEvent, error)
	ClaimPersonalEvents(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) ([]*model.PersonalEvent, error)
}

type notificationsRepository interface {
	CreateNotifications(ctx context.Context, q database.Queryable, notifications []*model.Notification) error
	GetDueNotifications(ctx context.Context, q database.Queryable, filter model.DueNotificationsFilter) ([]*model.DueNotification, error)
	ClaimSentNotifications(ctx context.Context, q database.Queryable, ids []uuid.UUID) ([]uuid.UUID, error)
}

// GroupProducer creates reminders for every attendee of group events.
type GroupProducer struct {
	db            database.PGX
	logger        *zap.SugaredLogger
	attendees     attendeesRepository
	events        eventsRepository
	notifications notificationsRepository
	now           func() time.Time
}

func NewGroupProducer(
	db database.PGX,
	logger *zap.SugaredLogger,
	attendees attendeesRepository,
	events eventsRepository,
	notifications notificationsRepository,
) *GroupProducer {
	return &GroupProducer{
		db:            db,
		logger:        logger,
		attendees:     attendees,
		events:        events,
		notifications: notifications,
		now:           time.Now,
	}
}

// Produce takes up to batchSize unprocessed attendees, oldest first, and
// stores every reminder that is still ahead of now for them. Attendees and
// reminders are committed together. It returns the number of reminders
// created.
func (p *GroupProducer) Produce(ctx context.Context, batchSize int) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	attendees, err := p.attendees.GetUnprocessedAttendees(ctx, tx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("attendeesRepository.GetUnprocessedAttendees: %w", err)
	}

	if len(attendees) == 0 {
		return 0, nil
	}

	utcNow := p.now().UTC()

	ids := make([]uuid.UUID, 0, len(attendees))
	for _, a := range attendees {
		if err := a.MarkAsProcessed(); err != nil {
			p.logger.Debugw("skip attendee", "id", a.ID, "err", err)
			continue
		}
		ids = append(ids, a.ID)
	}

	claimed, err := p.attendees.ClaimAttendees(ctx, tx, ids, utcNow)
	if err != nil {
		return 0, fmt.Errorf("attendeesRepository.ClaimAttendees: %w", err)
	}

	claimedSet := toSet(claimed)

	// Events are read after the claim so a reschedule committed in between is
	// seen with its new time.
	eventIDs := make([]uuid.UUID, 0, len(claimed))
	seen := make(map[uuid.UUID]struct{}, len(claimed))
	for _, a := range attendees {
		if _, ok := claimedSet[a.ID]; !ok {
			continue
		}
		if _, ok := seen[a.EventID]; !ok {
			eventIDs = append(eventIDs, a.EventID)
			seen[a.EventID] = struct{}{}
		}
	}

	events, err := p.events.GetGroupEventsByIDs(ctx, tx, eventIDs)
	if err != nil {
		return 0, fmt.Errorf("eventsRepository.GetGroupEventsByIDs: %w", err)
	}

	eventsMap := make(map[uuid.UUID]*model.GroupEvent, len(events))
	for _, e := range events {
		eventsMap[e.ID] = e
	}

	var notifications []*model.Notification
	for _, a := range attendees {
		if _, ok := claimedSet[a.ID]; !ok {
			continue
		}

		event, ok := eventsMap[a.EventID]
		if !ok {
			p.logger.Warnw("group event not found for attendee", "attendee", a.ID, "event", a.EventID)
			continue
		}

		if event.Cancelled {
			continue
		}

		notifications = append(notifications, createNotifications(&event.Event, a.UserID, utcNow)...)
	}

	if err := p.notifications.CreateNotifications(ctx, tx, notifications); err != nil {
		return 0, fmt.Errorf("notificationsRepository.CreateNotifications: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	p.logger.Debugw("group reminders produced", "attendees", len(claimed), "notifications", len(notifications))

	return len(notifications), nil
}

// PersonalProducer creates reminders for the owners of personal events.
type PersonalProducer struct {
	db            database.PGX
	logger        *zap.SugaredLogger
	events        eventsRepository
	notifications notificationsRepository
	now           func() time.Time
}

func NewPersonalProducer(
	db database.PGX,
	logger *zap.SugaredLogger,
	events eventsRepository,
	notifications notificationsRepository,
) *PersonalProducer {
	return &PersonalProducer{
		db:            db,
		logger:        logger,
		events:        events,
		notifications: notifications,
		now:           time.Now,
	}
}

// Produce is the personal event counterpart of GroupProducer.Produce.
func (p *PersonalProducer) Produce(ctx context.Context, batchSize int) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	events, err := p.events.GetUnprocessedPersonalEvents(ctx, tx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("eventsRepository.GetUnprocessedPersonalEvents: %w", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	utcNow := p.now().UTC()

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		if err := e.MarkAsProcessed(); err != nil {
			p.logger.Debugw("skip personal event", "id", e.ID, "err", err)
			continue
		}
		ids = append(ids, e.ID)
	}

	// The claim returns the rows as updated, so reminders follow the time
	// the event has once the claim holds its lock.
	claimed, err := p.events.ClaimPersonalEvents(ctx, tx, ids, utcNow)
	if err != nil {
		return 0, fmt.Errorf("eventsRepository.ClaimPersonalEvents: %w", err)
	}

	var notifications []*model.Notification
	for _, e := range claimed {
		notifications = append(notifications, createNotifications(&e.Event, e.UserID, utcNow)...)
	}

	if err := p.notifications.CreateNotifications(ctx, tx, notifications); err != nil {
		return 0, fmt.Errorf("notificationsRepository.CreateNotifications: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	p.logger.Debugw("personal reminders produced", "events", len(claimed), "notifications", len(notifications))

	return len(notifications), nil
}

func createNotifications(event *model.Event, userID uuid.UUID, utcNow time.Time) []*model.Notification {
	var res []*model.Notification
	for _, t := range model.NotificationTypes() {
		if n := t.TryCreateNotification(event, userID, utcNow); n != nil {
			res = append(res, n)
		}
	}
	return res
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	res := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}
