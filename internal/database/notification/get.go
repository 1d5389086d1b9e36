package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// GetDueNotifications returns unsent notifications with the fire time inside
// [From, To], earliest first. Notifications of cancelled or deleted events
// are skipped.
func (*Repository) GetDueNotifications(ctx context.Context, q database.Queryable, filter model.DueNotificationsFilter) ([]*model.DueNotification, error) {
	qb := database.PSQL.
		Select(
			"n.id",
			"n.event_id",
			"n.user_id",
			"n.notification_type",
			"n.date_time_utc",
			"n.sent",
			"n.deleted",
			"n.deleted_on_utc",
			"n.created_on_utc",
			"e.kind event_kind",
			"e.user_id event_owner_id",
			"e.name event_name",
			"e.category event_category",
			"e.date_time_utc event_date_time_utc",
			"e.created_on_utc event_created_on_utc",
			"u.first_name user_first_name",
			"u.last_name user_last_name",
			"u.email user_email",
			"u.created_on_utc user_created_on_utc",
		).
		From(database.NotificationsTable + " n").
		Join(database.EventsTable + " e on e.id = n.event_id").
		Join(database.UsersTable + " u on u.id = n.user_id").
		Where(sq.Eq{
			"n.sent":      false,
			"n.deleted":   false,
			"e.cancelled": false,
			"e.deleted":   false,
		}).
		Where(sq.GtOrEq{"n.date_time_utc": filter.From}).
		Where(sq.LtOrEq{"n.date_time_utc": filter.To}).
		OrderBy("n.date_time_utc", "n.id")

	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	var dtos []*dueNotificationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.DueNotification, len(dtos))
	for i, d := range dtos {
		res[i] = mapToDueNotification(d)
	}

	return res, nil
}

// GetEventNotifications returns every active notification of the event.
func (*Repository) GetEventNotifications(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]*model.Notification, error) {
	qb := database.PSQL.
		Select(
			"id",
			"event_id",
			"user_id",
			"notification_type",
			"date_time_utc",
			"sent",
			"deleted",
			"deleted_on_utc",
			"created_on_utc",
		).
		From(database.NotificationsTable).
		Where(sq.Eq{"event_id": eventID}).
		Where(database.NotDeleted).
		OrderBy("date_time_utc")

	var dtos []*notificationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Notification, len(dtos))
	for i, d := range dtos {
		res[i] = mapToNotification(d)
	}

	return res, nil
}
