package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Event, error) {
	dto, err := getEvent(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	event := mapToEvent(dto)
	return &event, nil
}

func (*Repository) GetPersonalEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.PersonalEvent, error) {
	dto, err := getEvent(ctx, q, sq.Eq{"id": id, "kind": int(model.EventKindPersonal)})
	if err != nil {
		return nil, err
	}

	return mapToPersonalEvent(dto), nil
}

func (*Repository) GetGroupEventByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.GroupEvent, error) {
	dto, err := getEvent(ctx, q, sq.Eq{"id": id, "kind": int(model.EventKindGroup)})
	if err != nil {
		return nil, err
	}

	return mapToGroupEvent(dto), nil
}

func (*Repository) GetGroupEventsByIDs(ctx context.Context, q database.Queryable, ids []uuid.UUID) ([]*model.GroupEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	dtos, err := selectEvents(ctx, q, baseQuery.Where(sq.Eq{"id": ids, "kind": int(model.EventKindGroup)}))
	if err != nil {
		return nil, err
	}

	res := make([]*model.GroupEvent, len(dtos))
	for i, d := range dtos {
		res[i] = mapToGroupEvent(d)
	}

	return res, nil
}

// GetUnprocessedPersonalEvents returns at most take personal events that have
// no reminders yet, oldest first.
func (*Repository) GetUnprocessedPersonalEvents(ctx context.Context, q database.Queryable, take int) ([]*model.PersonalEvent, error) {
	qb := baseQuery.
		Where(sq.Eq{
			"kind":      int(model.EventKindPersonal),
			"processed": false,
			"cancelled": false,
		}).
		OrderBy("created_on_utc").
		Limit(uint64(take))

	dtos, err := selectEvents(ctx, q, qb)
	if err != nil {
		return nil, err
	}

	res := make([]*model.PersonalEvent, len(dtos))
	for i, d := range dtos {
		res[i] = mapToPersonalEvent(d)
	}

	return res, nil
}

// GetUserEvents returns events owned by the user and group events the user
// attends, earliest first.
func (*Repository) GetUserEvents(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]*model.Event, error) {
	attending := database.PSQL.
		Select("event_id").
		From(database.AttendeesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(database.NotDeleted)

	attendingSQL, attendingArgs, err := attending.PlaceholderFormat(sq.Question).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	qb := baseQuery.
		Where(sq.Or{
			sq.Eq{"user_id": userID},
			sq.Expr("id in ("+attendingSQL+")", attendingArgs...),
		}).
		OrderBy("date_time_utc")

	dtos, err := selectEvents(ctx, q, qb)
	if err != nil {
		return nil, err
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		e := mapToEvent(d)
		res[i] = &e
	}

	return res, nil
}

func getEvent(ctx context.Context, q database.Queryable, predicate interface{}) (*eventDTO, error) {
	qb := baseQuery.
		Where(predicate)

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		return nil, database.MapError(err)
	}

	return dto, nil
}

func selectEvents(ctx context.Context, q database.Queryable, qb sq.SelectBuilder) ([]*eventDTO, error) {
	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return dtos, nil
}
