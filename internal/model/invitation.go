package model

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	aggregateRoot

	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         uuid.UUID
	Accepted       bool
	Rejected       bool
	CompletedOnUTC *time.Time
	Deleted        bool
	DeletedOnUTC   *time.Time
	CreatedOnUTC   time.Time
}

func (i *Invitation) Completed() bool {
	return i.CompletedOnUTC != nil
}

func (i *Invitation) Accept(utcNow time.Time) error {
	if i.Completed() {
		return ErrInvitationCompleted
	}

	i.Accepted = true
	i.CompletedOnUTC = &utcNow
	i.record(InvitationAccepted{InvitationID: i.ID, EventID: i.EventID, UserID: i.UserID})

	return nil
}

func (i *Invitation) Reject(utcNow time.Time) error {
	if i.Completed() {
		return ErrInvitationCompleted
	}

	i.Rejected = true
	i.CompletedOnUTC = &utcNow
	i.record(InvitationRejected{InvitationID: i.ID, EventID: i.EventID, UserID: i.UserID})

	return nil
}
