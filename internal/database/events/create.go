package events

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (*Repository) CreatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error {
	return createEvent(ctx, q, &event.Event, event.Processed)
}

func (*Repository) CreateGroupEvent(ctx context.Context, q database.Queryable, event *model.GroupEvent) error {
	return createEvent(ctx, q, &event.Event, false)
}

func createEvent(ctx context.Context, q database.Queryable, event *model.Event, processed bool) error {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"id",
			"kind",
			"user_id",
			"name",
			"category",
			"date_time_utc",
			"cancelled",
			"processed",
			"created_on_utc",
		).
		Values(
			event.ID,
			int(event.Kind),
			event.UserID,
			event.Name,
			int(event.Category),
			event.DateTimeUTC,
			event.Cancelled,
			processed,
			event.CreatedOnUTC,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
