package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendee drives reminder production for group events: every attendee gets
// its own set of notifications.
type Attendee struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	UserID        uuid.UUID
	Processed     bool
	Deleted       bool
	DeletedOnUTC  *time.Time
	CreatedOnUTC  time.Time
	ModifiedOnUTC *time.Time
}

func NewAttendee(eventID, userID uuid.UUID, utcNow time.Time) *Attendee {
	return &Attendee{
		ID:           uuid.New(),
		EventID:      eventID,
		UserID:       userID,
		CreatedOnUTC: utcNow,
	}
}

func (a *Attendee) MarkAsProcessed() error {
	if a.Processed {
		return ErrAlreadyProcessed
	}

	a.Processed = true
	return nil
}
