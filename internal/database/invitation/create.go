package invitation

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (*Repository) CreateInvitation(ctx context.Context, q database.Queryable, invitation *model.Invitation) error {
	qb := database.PSQL.
		Insert(database.InvitationsTable).
		Columns("id", "event_id", "user_id", "created_on_utc").
		Values(
			invitation.ID,
			invitation.EventID,
			invitation.UserID,
			invitation.CreatedOnUTC,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
