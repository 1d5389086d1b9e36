package api

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type userResp struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

type eventResp struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	DateTimeUTC time.Time `json:"date_time_utc"`
	Cancelled   bool      `json:"cancelled"`
}

func mapToEventResp(event *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:          event.ID,
		Kind:        event.Kind.String(),
		OwnerID:     event.UserID,
		Name:        event.Name,
		Category:    event.Category.String(),
		DateTimeUTC: event.DateTimeUTC,
		Cancelled:   event.Cancelled,
	}, nil
}

type invitationResp struct {
	ID      uuid.UUID `json:"id"`
	EventID uuid.UUID `json:"event_id"`
	UserID  uuid.UUID `json:"user_id"`
}

type friendshipRequestResp struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FriendID uuid.UUID `json:"friend_id"`
}
