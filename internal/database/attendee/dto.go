package attendee

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type attendeeDTO struct {
	ID            uuid.UUID  `db:"id"`
	EventID       uuid.UUID  `db:"event_id"`
	UserID        uuid.UUID  `db:"user_id"`
	Processed     bool       `db:"processed"`
	Deleted       bool       `db:"deleted"`
	DeletedOnUTC  *time.Time `db:"deleted_on_utc"`
	CreatedOnUTC  time.Time  `db:"created_on_utc"`
	ModifiedOnUTC *time.Time `db:"modified_on_utc"`
}

func mapToAttendee(d *attendeeDTO) *model.Attendee {
	return &model.Attendee{
		ID:            d.ID,
		EventID:       d.EventID,
		UserID:        d.UserID,
		Processed:     d.Processed,
		Deleted:       d.Deleted,
		DeletedOnUTC:  d.DeletedOnUTC,
		CreatedOnUTC:  d.CreatedOnUTC.UTC(),
		ModifiedOnUTC: d.ModifiedOnUTC,
	}
}
