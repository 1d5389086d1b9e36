package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a reminder materialized for a single user of an event.
// DateTimeUTC is the moment the reminder is due.
type Notification struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	UserID           uuid.UUID
	NotificationType NotificationType
	DateTimeUTC      time.Time
	Sent             bool
	Deleted          bool
	DeletedOnUTC     *time.Time
	CreatedOnUTC     time.Time
}

func (n *Notification) MarkAsSent() error {
	if n.Sent {
		return ErrNotificationAlreadySent
	}

	n.Sent = true
	return nil
}

// DueNotification is a notification joined with the event and the user it is
// addressed to.
type DueNotification struct {
	Notification *Notification
	Event        *Event
	User         *User
}

type DueNotificationsFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}
