package invitation

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type invitationDTO struct {
	ID             uuid.UUID  `db:"id"`
	EventID        uuid.UUID  `db:"event_id"`
	UserID         uuid.UUID  `db:"user_id"`
	Accepted       bool       `db:"accepted"`
	Rejected       bool       `db:"rejected"`
	CompletedOnUTC *time.Time `db:"completed_on_utc"`
	Deleted        bool       `db:"deleted"`
	DeletedOnUTC   *time.Time `db:"deleted_on_utc"`
	CreatedOnUTC   time.Time  `db:"created_on_utc"`
}

func mapToInvitation(d *invitationDTO) *model.Invitation {
	return &model.Invitation{
		ID:             d.ID,
		EventID:        d.EventID,
		UserID:         d.UserID,
		Accepted:       d.Accepted,
		Rejected:       d.Rejected,
		CompletedOnUTC: d.CompletedOnUTC,
		Deleted:        d.Deleted,
		DeletedOnUTC:   d.DeletedOnUTC,
		CreatedOnUTC:   d.CreatedOnUTC.UTC(),
	}
}
