package notification

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

// CreateNotifications inserts all notifications with a single statement.
func (*Repository) CreateNotifications(ctx context.Context, q database.Queryable, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	qb := database.PSQL.
		Insert(database.NotificationsTable).
		Columns(
			"id",
			"event_id",
			"user_id",
			"notification_type",
			"date_time_utc",
			"sent",
			"created_on_utc",
		)

	for _, n := range notifications {
		qb = qb.Values(
			n.ID,
			n.EventID,
			n.UserID,
			int(n.NotificationType),
			n.DateTimeUTC,
			n.Sent,
			n.CreatedOnUTC,
		)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
