package friendship

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) UpdateRequest(ctx context.Context, q database.Queryable, request *model.FriendshipRequest) error {
	qb := database.PSQL.
		Update(database.FriendshipRequestsTable).
		SetMap(map[string]interface{}{
			"accepted":         request.Accepted,
			"rejected":         request.Rejected,
			"completed_on_utc": request.CompletedOnUTC,
		}).
		Where(sq.Eq{"id": request.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}

// RemoveFriendship deletes both directions and reports whether the users were
// friends.
func (*Repository) RemoveFriendship(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error) {
	qb := database.PSQL.
		Delete(database.FriendshipsTable).
		Where(sq.Or{
			sq.Eq{"user_id": userID, "friend_id": friendID},
			sq.Eq{"user_id": friendID, "friend_id": userID},
		})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return false, fmt.Errorf("SQL request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
