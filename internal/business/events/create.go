package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (s *Service) CreatePersonalEvent(ctx context.Context, info *model.EventCreate) (*model.PersonalEvent, error) {
	var event *model.PersonalEvent

	err := s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		if err := checkFuture(info.DateTimeUTC, us.Now()); err != nil {
			return err
		}

		event = model.NewPersonalEvent(*info, us.Now())
		if err := s.events.CreatePersonalEvent(ctx, us.Tx(), event); err != nil {
			return fmt.Errorf("eventsRepository.CreatePersonalEvent: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// CreateGroupEvent creates the event with its owner as the first attendee.
func (s *Service) CreateGroupEvent(ctx context.Context, info *model.EventCreate) (*model.GroupEvent, error) {
	var event *model.GroupEvent

	err := s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		if err := checkFuture(info.DateTimeUTC, us.Now()); err != nil {
			return err
		}

		event = model.NewGroupEvent(*info, us.Now())
		if err := s.events.CreateGroupEvent(ctx, us.Tx(), event); err != nil {
			return fmt.Errorf("eventsRepository.CreateGroupEvent: %w", err)
		}

		owner := model.NewAttendee(event.ID, event.UserID, us.Now())
		if err := s.attendees.CreateAttendee(ctx, us.Tx(), owner); err != nil {
			return fmt.Errorf("attendeesRepository.CreateAttendee: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}
