package model

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate during a mutation. Events are
// dispatched in-process by the unit of work before the transaction commits.
type DomainEvent interface {
	EventName() string
}

// Aggregate is implemented by entities that record domain events.
type Aggregate interface {
	// PullEvents returns recorded events and clears them.
	PullEvents() []DomainEvent
}

type aggregateRoot struct {
	events []DomainEvent
}

func (a *aggregateRoot) record(e DomainEvent) {
	a.events = append(a.events, e)
}

func (a *aggregateRoot) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

const (
	EventCancelledName            = "event_cancelled"
	EventNameChangedName          = "event_name_changed"
	EventDateAndTimeChangedName   = "event_date_and_time_changed"
	InvitationSentName            = "invitation_sent"
	InvitationAcceptedName        = "invitation_accepted"
	InvitationRejectedName        = "invitation_rejected"
	FriendshipRequestSentName     = "friendship_request_sent"
	FriendshipRequestAcceptedName = "friendship_request_accepted"
	FriendshipRequestRejectedName = "friendship_request_rejected"
)

type EventCancelled struct {
	EventID uuid.UUID
	Kind    EventKind
}

func (EventCancelled) EventName() string { return EventCancelledName }

type EventNameChanged struct {
	EventID      uuid.UUID
	Kind         EventKind
	PreviousName string
}

func (EventNameChanged) EventName() string { return EventNameChangedName }

type EventDateAndTimeChanged struct {
	EventID             uuid.UUID
	Kind                EventKind
	PreviousDateTimeUTC time.Time
}

func (EventDateAndTimeChanged) EventName() string { return EventDateAndTimeChangedName }

type InvitationSent struct {
	InvitationID uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
}

func (InvitationSent) EventName() string { return InvitationSentName }

type InvitationAccepted struct {
	InvitationID uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
}

func (InvitationAccepted) EventName() string { return InvitationAcceptedName }

type InvitationRejected struct {
	InvitationID uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
}

func (InvitationRejected) EventName() string { return InvitationRejectedName }

type FriendshipRequestSent struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	FriendID  uuid.UUID
}

func (FriendshipRequestSent) EventName() string { return FriendshipRequestSentName }

type FriendshipRequestAccepted struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	FriendID  uuid.UUID
}

func (FriendshipRequestAccepted) EventName() string { return FriendshipRequestAcceptedName }

type FriendshipRequestRejected struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
	FriendID  uuid.UUID
}

func (FriendshipRequestRejected) EventName() string { return FriendshipRequestRejectedName }
