package handlers

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// onEventCancelled drops everything that could still produce a reminder and
// tells the attendees.
func (h *Handlers) onEventCancelled(ctx context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.EventCancelled)

	event, err := h.events.GetEventByID(ctx, scope.Tx(), ev.EventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	userIDs, err := h.attendees.RemoveAttendees(ctx, scope.Tx(), ev.EventID, scope.Now())
	if err != nil {
		return fmt.Errorf("attendeesRepository.RemoveAttendees: %w", err)
	}

	if _, err := h.invitations.RemovePendingInvitations(ctx, scope.Tx(), ev.EventID, scope.Now()); err != nil {
		return fmt.Errorf("invitationsRepository.RemovePendingInvitations: %w", err)
	}

	if _, err := h.notifications.RemoveUnsentNotifications(ctx, scope.Tx(), ev.EventID, scope.Now()); err != nil {
		return fmt.Errorf("notificationsRepository.RemoveUnsentNotifications: %w", err)
	}

	attendeeIDs := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if id != event.UserID {
			attendeeIDs = append(attendeeIDs, id)
		}
	}

	scope.Publish(integration.EventCancelled{
		EventID:     event.ID,
		Name:        event.Name,
		DateTimeUTC: event.DateTimeUTC,
		AttendeeIDs: attendeeIDs,
	})

	return nil
}

// onEventDateAndTimeChanged makes the producer pick the event up again.
// Unsent reminders computed for the old time are removed.
func (h *Handlers) onEventDateAndTimeChanged(ctx context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.EventDateAndTimeChanged)

	switch ev.Kind {
	case model.EventKindGroup:
		if err := h.attendees.MarkAttendeesUnprocessed(ctx, scope.Tx(), ev.EventID, scope.Now()); err != nil {
			return fmt.Errorf("attendeesRepository.MarkAttendeesUnprocessed: %w", err)
		}
	case model.EventKindPersonal:
		if err := h.events.MarkPersonalEventUnprocessed(ctx, scope.Tx(), ev.EventID, scope.Now()); err != nil {
			return fmt.Errorf("eventsRepository.MarkPersonalEventUnprocessed: %w", err)
		}
	default:
		return fmt.Errorf("unknown event kind %v", ev.Kind)
	}

	if _, err := h.notifications.RemoveUnsentNotifications(ctx, scope.Tx(), ev.EventID, scope.Now()); err != nil {
		return fmt.Errorf("notificationsRepository.RemoveUnsentNotifications: %w", err)
	}

	event, err := h.events.GetEventByID(ctx, scope.Tx(), ev.EventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	scope.Publish(integration.EventDateAndTimeChanged{
		EventID:             ev.EventID,
		PreviousDateTimeUTC: ev.PreviousDateTimeUTC,
		DateTimeUTC:         event.DateTimeUTC,
	})

	return nil
}

func (h *Handlers) onEventNameChanged(_ context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.EventNameChanged)

	scope.Publish(integration.EventNameChanged{
		EventID:      ev.EventID,
		PreviousName: ev.PreviousName,
	})

	return nil
}
