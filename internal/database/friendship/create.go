package friendship

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

// CreateRequest returns model.ErrAlreadyExists when a pending request between
// the same users already exists.
func (*Repository) CreateRequest(ctx context.Context, q database.Queryable, request *model.FriendshipRequest) error {
	qb := database.PSQL.
		Insert(database.FriendshipRequestsTable).
		Columns("id", "user_id", "friend_id", "created_on_utc").
		Values(
			request.ID,
			request.UserID,
			request.FriendID,
			request.CreatedOnUTC,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}

// CreateFriendships inserts both directions of a friendship. Existing rows are
// kept.
func (*Repository) CreateFriendships(ctx context.Context, q database.Queryable, pair [2]*model.Friendship) error {
	qb := database.PSQL.
		Insert(database.FriendshipsTable).
		Columns("user_id", "friend_id", "created_on_utc").
		Suffix("on conflict (user_id, friend_id) do nothing")

	for _, f := range pair {
		qb = qb.Values(f.UserID, f.FriendID, f.CreatedOnUTC)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
