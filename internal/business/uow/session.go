package uow

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

// Session is an open unit of work. It is not safe for concurrent use.
type Session struct {
	tx        database.Queryable
	now       time.Time
	tracked   []model.Aggregate
	published []integration.Event
}

// Tx is the transaction every change of the session must go through.
func (s *Session) Tx() database.Queryable {
	return s.tx
}

// Now is the time the session was opened at, used for every timestamp written
// by the session.
func (s *Session) Now() time.Time {
	return s.now
}

// Track registers an aggregate whose domain events are dispatched before
// commit.
func (s *Session) Track(aggregate model.Aggregate) {
	s.tracked = append(s.tracked, aggregate)
}

// Publish queues an integration event. It is stored with the commit and sent
// to the broker after it.
func (s *Session) Publish(event integration.Event) {
	s.published = append(s.published, event)
}

func (s *Session) pullEvents() []model.DomainEvent {
	var events []model.DomainEvent
	for _, a := range s.tracked {
		events = append(events, a.PullEvents()...)
	}
	return events
}
