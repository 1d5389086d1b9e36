package notifications

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// storeMock keeps attendees, events and notifications in memory and
// implements every repository the producers and the consumer need.
type storeMock struct {
	mu sync.Mutex

	attendees      []*model.Attendee
	groupEvents    map[uuid.UUID]*model.GroupEvent
	personalEvents []*model.PersonalEvent
	notifications  []*model.Notification
	users          map[uuid.UUID]*model.User
	invitations    map[uuid.UUID]*model.Invitation
	friendships    map[[2]uuid.UUID]struct{}

	// claimHook lets a test steal records between fetch and claim.
	claimHook func()
	// dueOverride replaces the due notifications lookup.
	dueOverride func(filter model.DueNotificationsFilter) []*model.DueNotification

	lastFilter model.DueNotificationsFilter
}

func newStoreMock() *storeMock {
	return &storeMock{
		groupEvents: make(map[uuid.UUID]*model.GroupEvent),
		users:       make(map[uuid.UUID]*model.User),
		invitations: make(map[uuid.UUID]*model.Invitation),
		friendships: make(map[[2]uuid.UUID]struct{}),
	}
}

func (s *storeMock) GetUnprocessedAttendees(_ context.Context, _ database.Queryable, take int) ([]*model.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*model.Attendee
	for _, a := range s.attendees {
		if len(res) == take {
			break
		}
		if !a.Processed {
			c := *a
			res = append(res, &c)
		}
	}
	return res, nil
}

func (s *storeMock) ClaimAttendees(_ context.Context, _ database.Queryable, ids []uuid.UUID, _ time.Time) ([]uuid.UUID, error) {
	if s.claimHook != nil {
		s.claimHook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := toSet(ids)
	var claimed []uuid.UUID
	for _, a := range s.attendees {
		if _, ok := wanted[a.ID]; ok && !a.Processed {
			a.Processed = true
			claimed = append(claimed, a.ID)
		}
	}
	return claimed, nil
}

func (s *storeMock) GetGroupEventsByIDs(_ context.Context, _ database.Queryable, ids []uuid.UUID) ([]*model.GroupEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*model.GroupEvent
	for _, id := range ids {
		if e, ok := s.groupEvents[id]; ok {
			res = append(res, e)
		}
	}
	return res, nil
}

func (s *storeMock) GetUnprocessedPersonalEvents(_ context.Context, _ database.Queryable, take int) ([]*model.PersonalEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*model.PersonalEvent
	for _, e := range s.personalEvents {
		if len(res) == take {
			break
		}
		if !e.Processed && !e.Cancelled {
			c := *e
			res = append(res, &c)
		}
	}
	return res, nil
}

func (s *storeMock) ClaimPersonalEvents(_ context.Context, _ database.Queryable, ids []uuid.UUID, _ time.Time) ([]*model.PersonalEvent, error) {
	if s.claimHook != nil {
		s.claimHook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := toSet(ids)
	var claimed []*model.PersonalEvent
	for _, e := range s.personalEvents {
		if _, ok := wanted[e.ID]; ok && !e.Processed && !e.Cancelled {
			e.Processed = true
			c := *e
			claimed = append(claimed, &c)
		}
	}
	return claimed, nil
}

func (s *storeMock) CreateNotifications(_ context.Context, _ database.Queryable, notifications []*model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notifications...)
	return nil
}

func (s *storeMock) GetDueNotifications(_ context.Context, _ database.Queryable, filter model.DueNotificationsFilter) ([]*model.DueNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFilter = filter
	if s.dueOverride != nil {
		return s.dueOverride(filter), nil
	}

	var due []*model.Notification
	for _, n := range s.notifications {
		if n.Sent || n.DateTimeUTC.Before(filter.From) || n.DateTimeUTC.After(filter.To) {
			continue
		}
		due = append(due, n)
	}
	sort.Slice(due, func(i, j int) bool { return due[i].DateTimeUTC.Before(due[j].DateTimeUTC) })
	if filter.Limit > 0 && len(due) > filter.Limit {
		due = due[:filter.Limit]
	}

	res := make([]*model.DueNotification, len(due))
	for i, n := range due {
		c := *n
		res[i] = &model.DueNotification{
			Notification: &c,
			Event:        s.eventLocked(n.EventID),
			User:         s.users[n.UserID],
		}
	}
	return res, nil
}

func (s *storeMock) ClaimSentNotifications(_ context.Context, _ database.Queryable, ids []uuid.UUID) ([]uuid.UUID, error) {
	if s.claimHook != nil {
		s.claimHook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := toSet(ids)
	var claimed []uuid.UUID
	for _, n := range s.notifications {
		if _, ok := wanted[n.ID]; ok && !n.Sent {
			n.Sent = true
			claimed = append(claimed, n.ID)
		}
	}
	return claimed, nil
}

func (s *storeMock) eventLocked(id uuid.UUID) *model.Event {
	if e, ok := s.groupEvents[id]; ok {
		return &e.Event
	}
	for _, e := range s.personalEvents {
		if e.ID == id {
			return &e.Event
		}
	}
	return nil
}

func (s *storeMock) notificationsFor(eventID uuid.UUID) []*model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*model.Notification
	for _, n := range s.notifications {
		if n.EventID == eventID {
			res = append(res, n)
		}
	}
	return res
}
