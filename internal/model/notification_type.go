package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType is a reminder rule. The value is stored as is, so existing
// values must never be renumbered.
type NotificationType int

const (
	NotificationTypeDayBefore NotificationType = iota + 1
	NotificationTypeHourBefore
	NotificationTypeFifteenMinutesBefore
)

type notificationRule struct {
	leadTime time.Duration
	subject  func(event *Event) string
	body     func(event *Event, user *User) string
}

var notificationRules = map[NotificationType]notificationRule{
	NotificationTypeDayBefore: {
		leadTime: 24 * time.Hour,
		subject: func(event *Event) string {
			return fmt.Sprintf("Reminder: %s is tomorrow", event.Name)
		},
		body: func(event *Event, user *User) string {
			return fmt.Sprintf("Hi %s,\n\nthis is a reminder that %q (%s) takes place tomorrow, %s UTC.\n",
				user.FirstName, event.Name, event.Category, event.DateTimeUTC.Format(emailTimeLayout))
		},
	},
	NotificationTypeHourBefore: {
		leadTime: time.Hour,
		subject: func(event *Event) string {
			return fmt.Sprintf("Reminder: %s starts in one hour", event.Name)
		},
		body: func(event *Event, user *User) string {
			return fmt.Sprintf("Hi %s,\n\n%q (%s) starts in one hour, at %s UTC.\n",
				user.FirstName, event.Name, event.Category, event.DateTimeUTC.Format(emailTimeLayout))
		},
	},
	NotificationTypeFifteenMinutesBefore: {
		leadTime: 15 * time.Minute,
		subject: func(event *Event) string {
			return fmt.Sprintf("Reminder: %s starts in 15 minutes", event.Name)
		},
		body: func(event *Event, user *User) string {
			return fmt.Sprintf("Hi %s,\n\n%q (%s) starts in 15 minutes, at %s UTC.\n",
				user.FirstName, event.Name, event.Category, event.DateTimeUTC.Format(emailTimeLayout))
		},
	},
}

const emailTimeLayout = "Mon, 02 Jan 2006 15:04"

// NotificationTypes returns every known type ordered by value.
func NotificationTypes() []NotificationType {
	return []NotificationType{
		NotificationTypeDayBefore,
		NotificationTypeHourBefore,
		NotificationTypeFifteenMinutesBefore,
	}
}

func ParseNotificationType(v int) (NotificationType, error) {
	t := NotificationType(v)
	if _, ok := notificationRules[t]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNotificationType, v)
	}
	return t, nil
}

func (t NotificationType) String() string {
	switch t {
	case NotificationTypeDayBefore:
		return "DayBefore"
	case NotificationTypeHourBefore:
		return "HourBefore"
	case NotificationTypeFifteenMinutesBefore:
		return "FifteenMinutesBefore"
	default:
		return fmt.Sprintf("NotificationType(%d)", int(t))
	}
}

// LeadTime returns how long before the event the reminder fires, zero for
// unknown types.
func (t NotificationType) LeadTime() time.Duration {
	return notificationRules[t].leadTime
}

// TryCreateNotification returns nil when the remaining time until the event
// is not longer than the lead time, i.e. the reminder would fire now or in
// the past.
func (t NotificationType) TryCreateNotification(event *Event, userID uuid.UUID, utcNow time.Time) *Notification {
	rule, ok := notificationRules[t]
	if !ok {
		return nil
	}

	if event.DateTimeUTC.Sub(utcNow) <= rule.leadTime {
		return nil
	}

	return &Notification{
		ID:               uuid.New(),
		EventID:          event.ID,
		UserID:           userID,
		NotificationType: t,
		DateTimeUTC:      event.DateTimeUTC.Add(-rule.leadTime),
		CreatedOnUTC:     utcNow,
	}
}

// CreateNotificationEmail renders the reminder for the notification's event
// and user. A notification passed together with a foreign event or user is
// a programming error and is reported as ErrNotificationMismatch.
func (t NotificationType) CreateNotificationEmail(n *Notification, event *Event, user *User) (subject, body string, err error) {
	rule, ok := notificationRules[t]
	if !ok {
		return "", "", fmt.Errorf("%w: %d", ErrUnknownNotificationType, int(t))
	}

	if n.NotificationType != t || n.EventID != event.ID || n.UserID != user.ID {
		return "", "", fmt.Errorf("%w: notification %v", ErrNotificationMismatch, n.ID)
	}

	return rule.subject(event), rule.body(event, user), nil
}
