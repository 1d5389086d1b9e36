// Package outbox republishes integration events whose publish after commit
// did not go through.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type outboxRepository interface {
	GetUnprocessedMessages(ctx context.Context, q database.Queryable, take int) ([]*integration.Message, error)
	MarkProcessed(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) error
	MarkFailed(ctx context.Context, q database.Queryable, id uuid.UUID, reason string) error
}

type publisher interface {
	Publish(ctx context.Context, message *integration.Message) error
}

type Relay struct {
	db        database.PGX
	repo      outboxRepository
	publisher publisher
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewRelay(db database.PGX, repo outboxRepository, publisher publisher, logger *zap.SugaredLogger) *Relay {
	return &Relay{
		db:        db,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Relay publishes up to batchSize pending messages and returns how many went
// through. A message that fails to publish stays pending with its error
// recorded.
func (r *Relay) Relay(ctx context.Context, batchSize int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	messages, err := r.repo.GetUnprocessedMessages(ctx, tx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("outboxRepository.GetUnprocessedMessages: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		if err := r.publisher.Publish(ctx, m); err != nil {
			r.logger.Warnw("relay integration event", "id", m.ID, "type", m.Type, "err", err)
			if err := r.repo.MarkFailed(ctx, tx, m.ID, err.Error()); err != nil {
				return 0, fmt.Errorf("outboxRepository.MarkFailed: %w", err)
			}
			continue
		}
		published = append(published, m.ID)
	}

	if err := r.repo.MarkProcessed(ctx, tx, published, r.now().UTC()); err != nil {
		return 0, fmt.Errorf("outboxRepository.MarkProcessed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return len(published), nil
}
