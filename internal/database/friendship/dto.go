package friendship

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type requestDTO struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	FriendID       uuid.UUID  `db:"friend_id"`
	Accepted       bool       `db:"accepted"`
	Rejected       bool       `db:"rejected"`
	CompletedOnUTC *time.Time `db:"completed_on_utc"`
	CreatedOnUTC   time.Time  `db:"created_on_utc"`
}

func mapToRequest(d *requestDTO) *model.FriendshipRequest {
	return &model.FriendshipRequest{
		ID:             d.ID,
		UserID:         d.UserID,
		FriendID:       d.FriendID,
		Accepted:       d.Accepted,
		Rejected:       d.Rejected,
		CompletedOnUTC: d.CompletedOnUTC,
		CreatedOnUTC:   d.CreatedOnUTC.UTC(),
	}
}
