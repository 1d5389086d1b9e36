// Package integration describes messages exchanged between the api and the
// worker through the message queue.
package integration

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeEventCancelled            Type = "EventCancelled"
	TypeEventNameChanged          Type = "EventNameChanged"
	TypeEventDateAndTimeChanged   Type = "EventDateAndTimeChanged"
	TypeInvitationSent            Type = "InvitationSent"
	TypeFriendshipRequestSent     Type = "FriendshipRequestSent"
	TypeFriendshipRequestAccepted Type = "FriendshipRequestAccepted"
)

// Event is implemented by every integration event payload.
type Event interface {
	IntegrationType() Type
}

// EventCancelled is published once the event and everything hanging off it
// is invalidated. AttendeeIDs are user ids captured before the attendees were
// removed.
type EventCancelled struct {
	EventID     uuid.UUID   `json:"event_id"`
	Name        string      `json:"name"`
	DateTimeUTC time.Time   `json:"date_time_utc"`
	AttendeeIDs []uuid.UUID `json:"attendee_ids"`
}

func (EventCancelled) IntegrationType() Type { return TypeEventCancelled }

type EventNameChanged struct {
	EventID      uuid.UUID `json:"event_id"`
	PreviousName string    `json:"previous_name"`
}

func (EventNameChanged) IntegrationType() Type { return TypeEventNameChanged }

type EventDateAndTimeChanged struct {
	EventID             uuid.UUID `json:"event_id"`
	PreviousDateTimeUTC time.Time `json:"previous_date_time_utc"`
	DateTimeUTC         time.Time `json:"date_time_utc"`
}

func (EventDateAndTimeChanged) IntegrationType() Type { return TypeEventDateAndTimeChanged }

type InvitationSent struct {
	InvitationID uuid.UUID `json:"invitation_id"`
	EventID      uuid.UUID `json:"event_id"`
	UserID       uuid.UUID `json:"user_id"`
}

func (InvitationSent) IntegrationType() Type { return TypeInvitationSent }

type FriendshipRequestSent struct {
	RequestID uuid.UUID `json:"request_id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
}

func (FriendshipRequestSent) IntegrationType() Type { return TypeFriendshipRequestSent }

type FriendshipRequestAccepted struct {
	RequestID uuid.UUID `json:"request_id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
}

func (FriendshipRequestAccepted) IntegrationType() Type { return TypeFriendshipRequestAccepted }
