package notification

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type notificationDTO struct {
	ID               uuid.UUID  `db:"id"`
	EventID          uuid.UUID  `db:"event_id"`
	UserID           uuid.UUID  `db:"user_id"`
	NotificationType int        `db:"notification_type"`
	DateTimeUTC      time.Time  `db:"date_time_utc"`
	Sent             bool       `db:"sent"`
	Deleted          bool       `db:"deleted"`
	DeletedOnUTC     *time.Time `db:"deleted_on_utc"`
	CreatedOnUTC     time.Time  `db:"created_on_utc"`
}

// dueNotificationDTO is a notification row joined with its event and user.
type dueNotificationDTO struct {
	ID               uuid.UUID  `db:"id"`
	EventID          uuid.UUID  `db:"event_id"`
	UserID           uuid.UUID  `db:"user_id"`
	NotificationType int        `db:"notification_type"`
	DateTimeUTC      time.Time  `db:"date_time_utc"`
	Sent             bool       `db:"sent"`
	Deleted          bool       `db:"deleted"`
	DeletedOnUTC     *time.Time `db:"deleted_on_utc"`
	CreatedOnUTC     time.Time  `db:"created_on_utc"`

	EventKind        int       `db:"event_kind"`
	EventOwnerID     uuid.UUID `db:"event_owner_id"`
	EventName        string    `db:"event_name"`
	EventCategory    int       `db:"event_category"`
	EventDateTimeUTC time.Time `db:"event_date_time_utc"`
	EventCreatedUTC  time.Time `db:"event_created_on_utc"`

	UserFirstName  string    `db:"user_first_name"`
	UserLastName   string    `db:"user_last_name"`
	UserEmail      string    `db:"user_email"`
	UserCreatedUTC time.Time `db:"user_created_on_utc"`
}

func mapToNotification(d *notificationDTO) *model.Notification {
	return &model.Notification{
		ID:               d.ID,
		EventID:          d.EventID,
		UserID:           d.UserID,
		NotificationType: model.NotificationType(d.NotificationType),
		DateTimeUTC:      d.DateTimeUTC.UTC(),
		Sent:             d.Sent,
		Deleted:          d.Deleted,
		DeletedOnUTC:     d.DeletedOnUTC,
		CreatedOnUTC:     d.CreatedOnUTC.UTC(),
	}
}

func mapToDueNotification(d *dueNotificationDTO) *model.DueNotification {
	return &model.DueNotification{
		Notification: mapToNotification(&notificationDTO{
			ID:               d.ID,
			EventID:          d.EventID,
			UserID:           d.UserID,
			NotificationType: d.NotificationType,
			DateTimeUTC:      d.DateTimeUTC,
			Sent:             d.Sent,
			Deleted:          d.Deleted,
			DeletedOnUTC:     d.DeletedOnUTC,
			CreatedOnUTC:     d.CreatedOnUTC,
		}),
		Event: &model.Event{
			ID:           d.EventID,
			Kind:         model.EventKind(d.EventKind),
			CreatedOnUTC: d.EventCreatedUTC.UTC(),
			EventCreate: model.EventCreate{
				UserID:      d.EventOwnerID,
				Name:        d.EventName,
				Category:    model.EventCategory(d.EventCategory),
				DateTimeUTC: d.EventDateTimeUTC.UTC(),
			},
		},
		User: &model.User{
			ID:           d.UserID,
			CreatedOnUTC: d.UserCreatedUTC.UTC(),
			UserCreate: model.UserCreate{
				FirstName: d.UserFirstName,
				LastName:  d.UserLastName,
				Email:     d.UserEmail,
			},
		},
	}
}
