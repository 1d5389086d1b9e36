package attendee

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

// CreateAttendee returns model.ErrAlreadyExists when the user already attends
// the event.
func (*Repository) CreateAttendee(ctx context.Context, q database.Queryable, attendee *model.Attendee) error {
	qb := database.PSQL.
		Insert(database.AttendeesTable).
		Columns("id", "event_id", "user_id", "processed", "created_on_utc").
		Values(
			attendee.ID,
			attendee.EventID,
			attendee.UserID,
			attendee.Processed,
			attendee.CreatedOnUTC,
		).
		Suffix("on conflict (event_id, user_id) where deleted = false do nothing")

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return database.MapError(err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyExists
	}

	return nil
}
