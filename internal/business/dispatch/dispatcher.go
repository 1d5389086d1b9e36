// Package dispatch delivers domain events to in-process handlers while the
// unit of work that recorded them is still open.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

// Scope is the part of an open unit of work visible to handlers.
type Scope interface {
	Tx() database.Queryable
	Now() time.Time
	Track(aggregate model.Aggregate)
	Publish(event integration.Event)
}

type HandlerFunc func(ctx context.Context, scope Scope, event model.DomainEvent) error

type Dispatcher struct {
	handlers map[string][]HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]HandlerFunc)}
}

// Register appends h to the handlers of the named event. Handlers run in
// registration order.
func (d *Dispatcher) Register(eventName string, h HandlerFunc) {
	d.handlers[eventName] = append(d.handlers[eventName], h)
}

// Dispatch runs every handler of the event and stops on the first error.
// Events without handlers are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, scope Scope, event model.DomainEvent) error {
	for i, h := range d.handlers[event.EventName()] {
		if err := h(ctx, scope, event); err != nil {
			return fmt.Errorf("handle %s (#%d): %w", event.EventName(), i, err)
		}
	}

	return nil
}
