package attendee

import (
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"a.id",
		"a.event_id",
		"a.user_id",
		"a.processed",
		"a.deleted",
		"a.deleted_on_utc",
		"a.created_on_utc",
		"a.modified_on_utc",
	).
	From(database.AttendeesTable + " a").
	Where("a.deleted = false")
