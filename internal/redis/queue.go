package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const (
	receiveTimeout = 5 * time.Second
	requeueDelay   = time.Second
)

// Queue is an at-least-once point-to-point queue on top of redis lists.
// Received messages are parked in a processing list until acknowledged, so a
// crashed consumer loses nothing.
type Queue struct {
	pool       *redis.Pool
	name       string
	processing string
	retryDelay time.Duration
	logger     *zap.SugaredLogger
}

func NewQueue(pool *redis.Pool, name string, logger *zap.SugaredLogger) *Queue {
	return &Queue{
		pool:       pool,
		name:       name,
		processing: name + ":processing",
		retryDelay: requeueDelay,
		logger:     logger,
	}
}

// Delivery is a received message waiting for Ack or Nack.
type Delivery struct {
	raw []byte
}

func (d *Delivery) Body() []byte {
	return d.raw
}

func (q *Queue) Publish(ctx context.Context, message *integration.Message) error {
	data, err := message.Encode()
	if err != nil {
		return err
	}

	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("LPUSH", q.name, data); err != nil {
		return fmt.Errorf("LPUSH %s: %w", q.name, err)
	}

	return nil
}

// Receive waits up to timeout for the next message. It returns nil without
// error when nothing arrived.
func (q *Queue) Receive(ctx context.Context, timeout time.Duration) (*Delivery, error) {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	raw, err := redis.Bytes(conn.Do("BRPOPLPUSH", q.name, q.processing, seconds))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("BRPOPLPUSH %s: %w", q.name, err)
	}

	return &Delivery{raw: raw}, nil
}

// Ack drops a handled message.
func (q *Queue) Ack(ctx context.Context, d *Delivery) error {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("LREM", q.processing, 1, d.raw); err != nil {
		return fmt.Errorf("LREM %s: %w", q.processing, err)
	}

	return nil
}

// Nack puts a message back to the end of the queue.
func (q *Queue) Nack(ctx context.Context, d *Delivery) error {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	if err := conn.Send("MULTI"); err != nil {
		return err
	}
	if err := conn.Send("LREM", q.processing, 1, d.raw); err != nil {
		return err
	}
	if err := conn.Send("LPUSH", q.name, d.raw); err != nil {
		return err
	}
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("requeue to %s: %w", q.name, err)
	}

	return nil
}

// Recover moves messages left in the processing list back to the queue. It
// must run before consumers start.
func (q *Queue) Recover(ctx context.Context) (int, error) {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	n := 0
	for {
		_, err := redis.Bytes(conn.Do("RPOPLPUSH", q.processing, q.name))
		if errors.Is(err, redis.ErrNil) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("RPOPLPUSH %s: %w", q.processing, err)
		}
		n++
	}
}

type Handler func(ctx context.Context, body []byte) error

// Consume hands messages to h one at a time until ctx is cancelled. A message
// is acknowledged only when h returns nil, otherwise it is requeued after
// retryDelay. A panic in h counts as a failure.
func (q *Queue) Consume(ctx context.Context, h Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		d, err := q.Receive(ctx, receiveTimeout)
		if err != nil {
			q.logger.Errorw("receive message", "queue", q.name, "err", err)
			if !sleep(ctx, time.Second) {
				return nil
			}
			continue
		}
		if d == nil {
			continue
		}

		if err := q.handle(ctx, h, d); err != nil {
			q.logger.Warnw("message handling failed, requeueing", "queue", q.name, "err", err)
			stopped := !sleep(ctx, q.retryDelay)
			if err := q.Nack(context.Background(), d); err != nil {
				q.logger.Errorw("requeue message", "queue", q.name, "err", err)
			}
			if stopped {
				return nil
			}
			continue
		}

		if err := q.Ack(context.Background(), d); err != nil {
			q.logger.Errorw("ack message", "queue", q.name, "err", err)
		}
	}
}

func (q *Queue) handle(ctx context.Context, h Handler, d *Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Errorw("message handler panicked", "queue", q.name, "panic", r)
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	return h(ctx, d.raw)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
