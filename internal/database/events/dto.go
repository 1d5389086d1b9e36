package events

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type eventDTO struct {
	ID            uuid.UUID  `db:"id"`
	Kind          int        `db:"kind"`
	UserID        uuid.UUID  `db:"user_id"`
	Name          string     `db:"name"`
	Category      int        `db:"category"`
	DateTimeUTC   time.Time  `db:"date_time_utc"`
	Cancelled     bool       `db:"cancelled"`
	Processed     bool       `db:"processed"`
	Deleted       bool       `db:"deleted"`
	DeletedOnUTC  *time.Time `db:"deleted_on_utc"`
	CreatedOnUTC  time.Time  `db:"created_on_utc"`
	ModifiedOnUTC *time.Time `db:"modified_on_utc"`
}

func mapToEvent(dto *eventDTO) model.Event {
	return model.Event{
		ID:            dto.ID,
		Kind:          model.EventKind(dto.Kind),
		Cancelled:     dto.Cancelled,
		Deleted:       dto.Deleted,
		DeletedOnUTC:  utcPtr(dto.DeletedOnUTC),
		CreatedOnUTC:  dto.CreatedOnUTC.UTC(),
		ModifiedOnUTC: utcPtr(dto.ModifiedOnUTC),
		EventCreate: model.EventCreate{
			UserID:      dto.UserID,
			Name:        dto.Name,
			Category:    model.EventCategory(dto.Category),
			DateTimeUTC: dto.DateTimeUTC.UTC(),
		},
	}
}

func mapToPersonalEvent(dto *eventDTO) *model.PersonalEvent {
	return &model.PersonalEvent{
		Event:     mapToEvent(dto),
		Processed: dto.Processed,
	}
}

func mapToGroupEvent(dto *eventDTO) *model.GroupEvent {
	return &model.GroupEvent{Event: mapToEvent(dto)}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
