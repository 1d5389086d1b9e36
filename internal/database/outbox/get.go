package outbox

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
)

// GetUnprocessedMessages returns at most take unpublished messages, oldest
// first. Rows are locked so concurrent relays skip each other's batches.
func (*Repository) GetUnprocessedMessages(ctx context.Context, q database.Queryable, take int) ([]*integration.Message, error) {
	qb := database.PSQL.
		Select("id", "type", "content::text content", "occurred_on_utc").
		From(database.OutboxTable).
		Where(sq.Eq{"processed_on_utc": nil}).
		OrderBy("occurred_on_utc").
		Limit(uint64(take)).
		Suffix("for update skip locked")

	var dtos []*messageDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*integration.Message, len(dtos))
	for i, d := range dtos {
		res[i] = mapToMessage(d)
	}

	return res, nil
}
