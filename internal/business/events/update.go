package events

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

func (s *Service) CancelEvent(ctx context.Context, userID, id uuid.UUID) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		event, err := s.getOwnedEvent(ctx, us, userID, id)
		if err != nil {
			return err
		}

		if err := event.Cancel(us.Now()); err != nil {
			return err
		}

		return s.saveEvent(ctx, us, event)
	})
}

func (s *Service) ChangeEventName(ctx context.Context, userID, id uuid.UUID, name string) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		event, err := s.getOwnedEvent(ctx, us, userID, id)
		if err != nil {
			return err
		}

		if event.Cancelled {
			return model.ErrEventCancelled
		}

		if !event.ChangeName(name) {
			return nil
		}

		return s.saveEvent(ctx, us, event)
	})
}

func (s *Service) ChangeEventDateAndTime(ctx context.Context, userID, id uuid.UUID, dateTimeUTC time.Time) error {
	return s.uow.Do(ctx, func(ctx context.Context, us *uow.Session) error {
		base, err := s.getOwnedEvent(ctx, us, userID, id)
		if err != nil {
			return err
		}

		if base.Cancelled {
			return model.ErrEventCancelled
		}

		if err := checkFuture(dateTimeUTC, us.Now()); err != nil {
			return err
		}

		if base.Kind != model.EventKindPersonal {
			if !base.ChangeDateAndTime(dateTimeUTC) {
				return nil
			}
			return s.saveEvent(ctx, us, base)
		}

		event, err := s.events.GetPersonalEventByID(ctx, us.Tx(), id)
		if err != nil {
			return fmt.Errorf("eventsRepository.GetPersonalEventByID: %w", err)
		}

		if !event.ChangeDateAndTime(dateTimeUTC) {
			return nil
		}

		event.ModifiedOnUTC = timePtr(us.Now())
		if err := s.events.UpdatePersonalEvent(ctx, us.Tx(), event); err != nil {
			return fmt.Errorf("eventsRepository.UpdatePersonalEvent: %w", err)
		}

		us.Track(event)
		return nil
	})
}

func (s *Service) getOwnedEvent(ctx context.Context, us *uow.Session, userID, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.GetEventByID(ctx, us.Tx(), id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.UserID != userID {
		return nil, model.ErrForbidden
	}

	return event, nil
}

func (s *Service) saveEvent(ctx context.Context, us *uow.Session, event *model.Event) error {
	event.ModifiedOnUTC = timePtr(us.Now())
	if err := s.events.UpdateEvent(ctx, us.Tx(), event); err != nil {
		return fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	us.Track(event)
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
