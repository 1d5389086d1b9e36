package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (h *Handlers) onInvitationSent(_ context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.InvitationSent)

	scope.Publish(integration.InvitationSent{
		InvitationID: ev.InvitationID,
		EventID:      ev.EventID,
		UserID:       ev.UserID,
	})

	return nil
}

// onInvitationAccepted adds the invited user to the event. A user who already
// attends is left as is.
func (h *Handlers) onInvitationAccepted(ctx context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.InvitationAccepted)

	attendee := model.NewAttendee(ev.EventID, ev.UserID, scope.Now())
	if err := h.attendees.CreateAttendee(ctx, scope.Tx(), attendee); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("attendeesRepository.CreateAttendee: %w", err)
	}

	return nil
}

func (h *Handlers) onFriendshipRequestSent(_ context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.FriendshipRequestSent)

	scope.Publish(integration.FriendshipRequestSent{
		RequestID: ev.RequestID,
		UserID:    ev.UserID,
		FriendID:  ev.FriendID,
	})

	return nil
}

func (h *Handlers) onFriendshipRequestAccepted(ctx context.Context, scope dispatch.Scope, e model.DomainEvent) error {
	ev := e.(model.FriendshipRequestAccepted)

	pair := model.NewFriendshipPair(ev.UserID, ev.FriendID, scope.Now())
	if err := h.friendships.CreateFriendships(ctx, scope.Tx(), pair); err != nil {
		return fmt.Errorf("friendshipsRepository.CreateFriendships: %w", err)
	}

	scope.Publish(integration.FriendshipRequestAccepted{
		RequestID: ev.RequestID,
		UserID:    ev.UserID,
		FriendID:  ev.FriendID,
	})

	return nil
}
