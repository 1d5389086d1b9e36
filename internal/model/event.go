package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventKind int

const (
	EventKindPersonal EventKind = iota + 1
	EventKindGroup
)

func (k EventKind) String() string {
	switch k {
	case EventKindPersonal:
		return "personal"
	case EventKindGroup:
		return "group"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

type EventCategory int

const (
	EventCategoryOther EventCategory = iota
	EventCategoryBirthday
	EventCategoryMeeting
	EventCategorySport
	EventCategoryCulture
	EventCategoryTravel
)

func (c EventCategory) Valid() bool {
	return c >= EventCategoryOther && c <= EventCategoryTravel
}

func (c EventCategory) String() string {
	switch c {
	case EventCategoryOther:
		return "Other"
	case EventCategoryBirthday:
		return "Birthday"
	case EventCategoryMeeting:
		return "Meeting"
	case EventCategorySport:
		return "Sport"
	case EventCategoryCulture:
		return "Culture"
	case EventCategoryTravel:
		return "Travel"
	default:
		return fmt.Sprintf("EventCategory(%d)", int(c))
	}
}

type EventCreate struct {
	UserID      uuid.UUID
	Name        string
	Category    EventCategory
	DateTimeUTC time.Time
}

// Event holds the state shared by personal and group events.
type Event struct {
	aggregateRoot

	ID            uuid.UUID
	Kind          EventKind
	Cancelled     bool
	Deleted       bool
	DeletedOnUTC  *time.Time
	CreatedOnUTC  time.Time
	ModifiedOnUTC *time.Time
	EventCreate
}

func newEvent(kind EventKind, info EventCreate, utcNow time.Time) Event {
	return Event{
		ID:           uuid.New(),
		Kind:         kind,
		CreatedOnUTC: utcNow,
		EventCreate: EventCreate{
			UserID:      info.UserID,
			Name:        info.Name,
			Category:    info.Category,
			DateTimeUTC: info.DateTimeUTC.UTC(),
		},
	}
}

func (e *Event) Cancel(utcNow time.Time) error {
	if e.Cancelled {
		return ErrEventAlreadyCancelled
	}

	if utcNow.After(e.DateTimeUTC) {
		return ErrEventHasPassed
	}

	e.Cancelled = true
	e.record(EventCancelled{EventID: e.ID, Kind: e.Kind})

	return nil
}

// ChangeName reports whether the name was actually changed.
func (e *Event) ChangeName(name string) bool {
	if e.Name == name {
		return false
	}

	previous := e.Name
	e.Name = name
	e.record(EventNameChanged{EventID: e.ID, Kind: e.Kind, PreviousName: previous})

	return true
}

// ChangeDateAndTime reports whether the date and time was actually changed.
func (e *Event) ChangeDateAndTime(dateTimeUTC time.Time) bool {
	dateTimeUTC = dateTimeUTC.UTC()
	if e.DateTimeUTC.Equal(dateTimeUTC) {
		return false
	}

	previous := e.DateTimeUTC
	e.DateTimeUTC = dateTimeUTC
	e.record(EventDateAndTimeChanged{EventID: e.ID, Kind: e.Kind, PreviousDateTimeUTC: previous})

	return true
}

type PersonalEvent struct {
	Event
	Processed bool
}

func NewPersonalEvent(info EventCreate, utcNow time.Time) *PersonalEvent {
	return &PersonalEvent{Event: newEvent(EventKindPersonal, info, utcNow)}
}

// ChangeDateAndTime resets the processed flag so reminders are produced
// against the new schedule.
func (e *PersonalEvent) ChangeDateAndTime(dateTimeUTC time.Time) bool {
	if !e.Event.ChangeDateAndTime(dateTimeUTC) {
		return false
	}

	e.Processed = false
	return true
}

func (e *PersonalEvent) MarkAsProcessed() error {
	if e.Processed {
		return ErrAlreadyProcessed
	}

	e.Processed = true
	return nil
}

func (e *PersonalEvent) MarkAsUnprocessed() {
	e.Processed = false
}

type GroupEvent struct {
	Event
}

func NewGroupEvent(info EventCreate, utcNow time.Time) *GroupEvent {
	return &GroupEvent{Event: newEvent(EventKindGroup, info, utcNow)}
}

// Invite creates an invitation for the user. hasPendingInvitation tells
// whether an uncompleted invitation for the same user already exists.
func (e *GroupEvent) Invite(userID uuid.UUID, hasPendingInvitation bool, utcNow time.Time) (*Invitation, error) {
	if e.Cancelled {
		return nil, ErrEventCancelled
	}

	if userID == e.UserID {
		return nil, ErrInviteOwner
	}

	if hasPendingInvitation {
		return nil, ErrInvitationPending
	}

	invitation := &Invitation{
		ID:           uuid.New(),
		EventID:      e.ID,
		UserID:       userID,
		CreatedOnUTC: utcNow,
	}
	e.record(InvitationSent{InvitationID: invitation.ID, EventID: e.ID, UserID: userID})

	return invitation, nil
}
