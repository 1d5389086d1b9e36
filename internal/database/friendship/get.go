package friendship

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) GetRequestByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.FriendshipRequest, error) {
	qb := requestsBaseQuery.
		Where(sq.Eq{"id": id})

	dto := &requestDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		return nil, database.MapError(err)
	}

	return mapToRequest(dto), nil
}

func (*Repository) AreFriends(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error) {
	qb := database.PSQL.
		Select("count(*) > 0").
		From(database.FriendshipsTable).
		Where(sq.Eq{"user_id": userID, "friend_id": friendID})

	var friends bool
	if err := q.Get(ctx, &friends, qb); err != nil {
		return false, fmt.Errorf("SQL request: %w", err)
	}

	return friends, nil
}

func (*Repository) GetFriendIDs(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]uuid.UUID, error) {
	qb := database.PSQL.
		Select("friend_id").
		From(database.FriendshipsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_on_utc")

	var ids []uuid.UUID
	if err := q.Select(ctx, &ids, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return ids, nil
}
