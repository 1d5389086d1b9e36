package notification

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/google/uuid"
)

// ClaimSentNotifications flips sent for the given notifications and returns
// the ids that were still unsent.
func (*Repository) ClaimSentNotifications(ctx context.Context, q database.Queryable, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := database.PSQL.
		Update(database.NotificationsTable).
		Set("sent", true).
		Where(sq.Eq{"id": ids, "sent": false}).
		Where(database.NotDeleted).
		Suffix("returning id")

	var claimed []uuid.UUID
	if err := q.Select(ctx, &claimed, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return claimed, nil
}

// RemoveUnsentNotifications soft-deletes the event's notifications that were
// not sent yet and returns how many were removed.
func (*Repository) RemoveUnsentNotifications(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) (int64, error) {
	qb := database.PSQL.
		Update(database.NotificationsTable).
		Set("deleted", true).
		Set("deleted_on_utc", utcNow).
		Where(sq.Eq{"event_id": eventID, "sent": false}).
		Where(database.NotDeleted)

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return tag.RowsAffected(), nil
}
