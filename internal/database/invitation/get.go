package invitation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (*Repository) GetInvitationByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Invitation, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &invitationDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		return nil, database.MapError(err)
	}

	return mapToInvitation(dto), nil
}

// HasPendingInvitation reports whether the user has an uncompleted invitation
// to the event.
func (*Repository) HasPendingInvitation(ctx context.Context, q database.Queryable, eventID, userID uuid.UUID) (bool, error) {
	qb := database.PSQL.
		Select("count(*) > 0").
		From(database.InvitationsTable).
		Where(sq.Eq{
			"event_id":         eventID,
			"user_id":          userID,
			"completed_on_utc": nil,
		}).
		Where(database.NotDeleted)

	var pending bool
	if err := q.Get(ctx, &pending, qb); err != nil {
		return false, fmt.Errorf("SQL request: %w", err)
	}

	return pending, nil
}
