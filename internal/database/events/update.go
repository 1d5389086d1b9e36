package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	return updateEvent(ctx, q, event, map[string]interface{}{})
}

func (*Repository) UpdatePersonalEvent(ctx context.Context, q database.Queryable, event *model.PersonalEvent) error {
	return updateEvent(ctx, q, &event.Event, map[string]interface{}{"processed": event.Processed})
}

func updateEvent(ctx context.Context, q database.Queryable, event *model.Event, extra map[string]interface{}) error {
	set := map[string]interface{}{
		"name":            event.Name,
		"category":        int(event.Category),
		"date_time_utc":   event.DateTimeUTC,
		"cancelled":       event.Cancelled,
		"modified_on_utc": event.ModifiedOnUTC,
	}
	for k, v := range extra {
		set[k] = v
	}

	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(set).
		Where(sq.Eq{"id": event.ID}).
		Where(database.NotDeleted)

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}

// ClaimPersonalEvents flips processed for the given events and returns the
// events that were still unprocessed and not cancelled, as they are after the
// update. Events claimed concurrently by another producer are left out.
func (*Repository) ClaimPersonalEvents(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) ([]*model.PersonalEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	qb := database.PSQL.
		Update(database.EventsTable).
		Set("processed", true).
		Set("modified_on_utc", utcNow).
		Where(sq.Eq{
			"id":        ids,
			"kind":      int(model.EventKindPersonal),
			"processed": false,
			"cancelled": false,
		}).
		Where(database.NotDeleted).
		Suffix("returning " + strings.Join(eventColumns, ", "))

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.PersonalEvent, len(dtos))
	for i, d := range dtos {
		res[i] = mapToPersonalEvent(d)
	}

	return res, nil
}

func (*Repository) MarkPersonalEventUnprocessed(ctx context.Context, q database.Queryable, id uuid.UUID, utcNow time.Time) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("processed", false).
		Set("modified_on_utc", utcNow).
		Where(sq.Eq{"id": id, "kind": int(model.EventKindPersonal)})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
