package friendships

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
	db          database.PGX
	uow         unitOfWork
	friendships friendshipsRepository
}

type unitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, s *uow.Session) error) error
}

type friendshipsRepository interface {
	CreateRequest(ctx context.Context, q database.Queryable, request *model.FriendshipRequest) error
	GetRequestByID(ctx context.Context, q database.Queryable, id uuid.UUID) (*model.FriendshipRequest, error)
	UpdateRequest(ctx context.Context, q database.Queryable, request *model.FriendshipRequest) error
	AreFriends(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error)
	GetFriendIDs(ctx context.Context, q database.Queryable, userID uuid.UUID) ([]uuid.UUID, error)
	RemoveFriendship(ctx context.Context, q database.Queryable, userID, friendID uuid.UUID) (bool, error)
}

func NewService(db database.PGX, uow unitOfWork, friendships friendshipsRepository) *Service {
	return &Service{
		db:          db,
		uow:         uow,
		friendships: friendships,
	}
}

func (s *Service) SendRequest(ctx context.Context, userID, friendID uuid.UUID) (*model.FriendshipRequest, error) {
	var request *model.FriendshipRequest

	err := s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		friends, err := s.friendships.AreFriends(ctx, us.Tx(), userID, friendID)
		if err != nil {
			return fmt.Errorf("friendshipsRepository.AreFriends: %w", err)
		}

		if friends {
			return model.ErrAlreadyExists
		}

		request, err = model.NewFriendshipRequest(userID, friendID, us.Now())
		if err != nil {
			return err
		}

		if err := s.friendships.CreateRequest(ctx, us.Tx(), request); err != nil {
			return fmt.Errorf("friendshipsRepository.CreateRequest: %w", err)
		}

		us.Track(request)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// Accept completes the request addressed to userID. Both directions of the
// friendship are stored in the same transaction.
func (s *Service) Accept(ctx context.Context, userID, id uuid.UUID) error {
	return s.complete(ctx, userID, id, (*model.FriendshipRequest).Accept)
}

func (s *Service) Reject(ctx context.Context, userID, id uuid.UUID) error {
	return s.complete(ctx, userID, id, (*model.FriendshipRequest).Reject)
}

func (s *Service) complete(
	ctx context.Context,
	userID, id uuid.UUID,
	transition func(r *model.FriendshipRequest, utcNow time.Time) error,
) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		request, err := s.friendships.GetRequestByID(ctx, us.Tx(), id)
		if err != nil {
			return fmt.Errorf("friendshipsRepository.GetRequestByID: %w", err)
		}

		if request.FriendID != userID {
			return model.ErrForbidden
		}

		if err := transition(request, us.Now()); err != nil {
			return err
		}

		if err := s.friendships.UpdateRequest(ctx, us.Tx(), request); err != nil {
			return fmt.Errorf("friendshipsRepository.UpdateRequest: %w", err)
		}

		us.Track(request)
		return nil
	})
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		removed, err := s.friendships.RemoveFriendship(ctx, us.Tx(), userID, friendID)
		if err != nil {
			return fmt.Errorf("friendshipsRepository.RemoveFriendship: %w", err)
		}

		if !removed {
			return model.ErrNotFriends
		}

		return nil
	})
}

func (s *Service) GetFriends(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.friendships.GetFriendIDs(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("friendshipsRepository.GetFriendIDs: %w", err)
	}

	return ids, nil
}
