package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/google/uuid"
)

func (*Repository) MarkProcessed(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	qb := database.PSQL.
		Update(database.OutboxTable).
		Set("processed_on_utc", utcNow).
		Set("error", nil).
		Where(sq.Eq{"id": ids, "processed_on_utc": nil})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// MarkFailed keeps the message unprocessed and records the last publish error.
func (*Repository) MarkFailed(ctx context.Context, q database.Queryable, id uuid.UUID, reason string) error {
	qb := database.PSQL.
		Update(database.OutboxTable).
		Set("error", reason).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
