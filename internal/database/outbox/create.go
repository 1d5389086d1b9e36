package outbox

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
)

func (*Repository) CreateMessages(ctx context.Context, q database.Queryable, messages []*integration.Message) error {
	if len(messages) == 0 {
		return nil
	}

	qb := database.PSQL.
		Insert(database.OutboxTable).
		Columns("id", "type", "content", "occurred_on_utc")

	for _, m := range messages {
		qb = qb.Values(m.ID, string(m.Type), string(m.Payload), m.OccurredOnUTC)
	}

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
