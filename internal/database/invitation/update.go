package invitation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) UpdateInvitation(ctx context.Context, q database.Queryable, invitation *model.Invitation) error {
	qb := database.PSQL.
		Update(database.InvitationsTable).
		SetMap(map[string]interface{}{
			"accepted":         invitation.Accepted,
			"rejected":         invitation.Rejected,
			"completed_on_utc": invitation.CompletedOnUTC,
		}).
		Where(sq.Eq{"id": invitation.ID}).
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

// RemovePendingInvitations soft-deletes the uncompleted invitations to the
// event.
func (*Repository) RemovePendingInvitations(ctx context.Context, q database.Queryable, eventID uuid.UUID, utcNow time.Time) (int64, error) {
	qb := database.PSQL.
		Update(database.InvitationsTable).
		Set("deleted", true).
		Set("deleted_on_utc", utcNow).
		Where(sq.Eq{"event_id": eventID, "completed_on_utc": nil}).
		Where(database.NotDeleted)

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return tag.RowsAffected(), nil
}
