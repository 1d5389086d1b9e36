// Package uow runs a business command in one transaction, dispatches the
// domain events it recorded and hands the resulting integration events to the
// broker through the outbox.
package uow

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxDispatchRounds = 16

type outboxRepository interface {
	CreateMessages(ctx context.Context, q database.Queryable, messages []*integration.Message) error
	MarkProcessed(ctx context.Context, q database.Queryable, ids []uuid.UUID, utcNow time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, message *integration.Message) error
}

type UnitOfWork struct {
	db         database.PGX
	dispatcher *dispatch.Dispatcher
	outbox     outboxRepository
	publisher  Publisher
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func New(
	db database.PGX,
	dispatcher *dispatch.Dispatcher,
	outbox outboxRepository,
	publisher Publisher,
	logger *zap.SugaredLogger,
) *UnitOfWork {
	return &UnitOfWork{
		db:         db,
		dispatcher: dispatcher,
		outbox:     outbox,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Do runs fn in a transaction. After fn returns, domain events of tracked
// aggregates are dispatched until none are left, integration events are
// written to the outbox and the transaction is committed. Any error rolls
// everything back. Integration events are published only after the commit.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, s *Session) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	s := &Session{
		tx:  tx,
		now: u.now().UTC(),
	}

	if err := fn(ctx, s); err != nil {
		return err
	}

	if err := u.dispatchAll(ctx, s); err != nil {
		return err
	}

	messages := make([]*integration.Message, len(s.published))
	for i, e := range s.published {
		m, err := integration.NewMessage(e, s.now)
		if err != nil {
			return err
		}
		messages[i] = m
	}

	if err := u.outbox.CreateMessages(ctx, tx, messages); err != nil {
		return fmt.Errorf("outbox.CreateMessages: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	u.publish(ctx, messages)

	return nil
}

func (u *UnitOfWork) dispatchAll(ctx context.Context, s *Session) error {
	for round := 0; ; round++ {
		events := s.pullEvents()
		if len(events) == 0 {
			return nil
		}

		if round == maxDispatchRounds {
			return fmt.Errorf("domain events still recorded after %d dispatch rounds", maxDispatchRounds)
		}

		for _, e := range events {
			if err := u.dispatcher.Dispatch(ctx, s, e); err != nil {
				return err
			}
		}
	}
}

// publish is best effort. Messages left unprocessed are picked up by the
// outbox relay.
func (u *UnitOfWork) publish(ctx context.Context, messages []*integration.Message) {
	if len(messages) == 0 {
		return
	}

	published := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		if err := u.publisher.Publish(ctx, m); err != nil {
			u.logger.Warnw("publish integration event", "id", m.ID, "type", m.Type, "err", err)
			continue
		}
		published = append(published, m.ID)
	}

	if err := u.outbox.MarkProcessed(ctx, u.db, published, u.now().UTC()); err != nil {
		u.logger.Warnw("mark outbox messages processed", "ids", published, "err", err)
	}
}
