package attendee

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/google/uuid"
)

// ClaimAttendees flips processed for the given attendees and returns the ids
// that were still unprocessed.
func (*Repository) ClaimAttendees(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := database.PSQL.
		Update(database.AttendeesTable).
		Set("processed", true).
		Set("modified_on_utc", utcNow).
		Where(sq.Eq{"id": ids, "processed": false}).
		Where(database.NotDeleted).
		Suffix("returning id")

	var claimed []uuid.UUID
	if err := q.Select(ctx, &claimed, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return claimed, nil
}

func (*Repository) MarkAttendeesUnprocessed(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) error {
	qb := database.PSQL.
		Update(database.AttendeesTable).
		Set("processed", false).
		Set("modified_on_utc", utcNow).
		Where(sq.Eq{"event_id": eventID}).
		Where(database.NotDeleted)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// RemoveAttendees soft-deletes every attendee of the event and returns their
// user ids.
func (*Repository) RemoveAttendees(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) ([]uuid.UUID, error) {
	qb := database.PSQL.
		Update(database.AttendeesTable).
		Set("deleted", true).
		Set("deleted_on_utc", utcNow).
		Where(sq.Eq{"event_id": eventID}).
		Where(database.NotDeleted).
		Suffix("returning user_id")

	var userIDs []uuid.UUID
	if err := q.Select(ctx, &userIDs, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return userIDs, nil
}
