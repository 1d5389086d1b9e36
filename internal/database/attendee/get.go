package attendee

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// GetUnprocessedAttendees returns at most take attendees without reminders,
// oldest first. Attendees of cancelled or deleted events are skipped.
func (*Repository) GetUnprocessedAttendees(ctx context.Context, q database.Queryable, take int) ([]*model.Attendee, error) {
	qb := baseQuery.
		Join(database.EventsTable + " e on e.id = a.event_id").
		Where(sq.Eq{
			"a.processed": false,
			"e.cancelled": false,
			"e.deleted":   false,
		}).
		OrderBy("a.created_on_utc").
		Limit(uint64(take))

	var dtos []*attendeeDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Attendee, len(dtos))
	for i, d := range dtos {
		res[i] = mapToAttendee(d)
	}

	return res, nil
}

func (*Repository) GetAttendeeUserIDs(ctx context.Context, q database.Queryable, eventID uuid.UUID) ([]uuid.UUID, error) {
	qb := database.PSQL.
		Select("user_id").
		From(database.AttendeesTable).
		Where(sq.Eq{"event_id": eventID}).
		Where(database.NotDeleted).
		OrderBy("created_on_utc")

	var ids []uuid.UUID
	if err := q.Select(ctx, &ids, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return ids, nil
}
