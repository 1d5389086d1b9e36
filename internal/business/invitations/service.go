package invitations

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type Service struct {
	uow         unitOfWork
	invitations invitationsRepository
}

type unitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, s *uow.Session) error) error
}

type invitationsRepository interface {
	GetInvitationByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.Invitation, error)
	UpdateInvitation(ctx context.Context, q database.Queryable, invitation *model.Invitation) error
}

func NewService(uow unitOfWork, invitations invitationsRepository) *Service {
	return &Service{
		uow:         uow,
		invitations: invitations,
	}
}

// Accept completes the invitation. The invited user becomes an attendee in the
// same transaction.
func (s *Service) Accept(ctx context.Context, userID, id uuid.UUID) error {
	return s.complete(ctx, userID, id, (*model.Invitation).Accept)
}

func (s *Service) Reject(ctx context.Context, userID, id uuid.UUID) error {
	return s.complete(ctx, userID, id, (*model.Invitation).Reject)
}

func (s *Service) complete(
	ctx context.Context,
	userID, id uuid.UUID,
	transition func(i *model.Invitation, utcNow time.Time) error,
) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		invitation, err := s.invitations.GetInvitationByID(ctx, us.Tx(), id)
		if err != nil {
			return fmt.Errorf("invitationsRepository.GetInvitationByID: %w", err)
		}

		if invitation.UserID != userID {
			return model.ErrForbidden
		}

		if err := transition(invitation, us.Now()); err != nil {
			return err
		}

		if err := s.invitations.UpdateInvitation(ctx, us.Tx(), invitation); err != nil {
			return fmt.Errorf("invitationsRepository.UpdateInvitation: %w", err)
		}

		us.Track(invitation)
		return nil
	})
}
