package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

// GetEvent returns the event when the user owns or attends it.
func (s *Service) GetEvent(ctx context.Context, userID, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.UserID == userID {
		return event, nil
	}

	attendees, err := s.attendees.GetAttendeeUserIDs(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("attendeesRepository.GetAttendeeUserIDs: %w", err)
	}

	for _, a := range attendees {
		if a == userID {
			return event, nil
		}
	}

	return nil, model.ErrNoRecord
}

func (s *Service) GetUserEvents(ctx context.Context, userID uuid.UUID) ([]*model.Event, error) {
	events, err := s.events.GetUserEvents(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetUserEvents: %w", err)
	}

	return events, nil
}
