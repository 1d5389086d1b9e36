package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// InviteUser invites a friend of the owner to a group event.
func (s *Service) InviteUser(ctx context.Context, ownerID, eventID, userID uuid.UUID) (*model.Invitation, error) {
	var invitation *model.Invitation

	err := s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		event, err := s.events.GetGroupEventByID(ctx, us.Tx(), eventID)
		if err != nil {
			return fmt.Errorf("eventsRepository.GetGroupEventByID: %w", err)
		}

		if event.UserID != ownerID {
			return model.ErrForbidden
		}

		friends, err := s.friendships.AreFriends(ctx, us.Tx(), ownerID, userID)
		if err != nil {
			return fmt.Errorf("friendshipsRepository.AreFriends: %w", err)
		}

		if !friends {
			return model.ErrNotFriends
		}

		pending, err := s.invitations.HasPendingInvitation(ctx, us.Tx(), eventID, userID)
		if err != nil {
			return fmt.Errorf("invitationsRepository.HasPendingInvitation: %w", err)
		}

		invitation, err = event.Invite(userID, pending, us.Now())
		if err != nil {
			return err
		}

		if err := s.invitations.CreateInvitation(ctx, us.Tx(), invitation); err != nil {
			return fmt.Errorf("invitationsRepository.CreateInvitation: %w", err)
		}

		us.Track(event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return invitation, nil
}
