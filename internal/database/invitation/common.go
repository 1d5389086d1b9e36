package invitation

import (
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"event_id",
		"user_id",
		"accepted",
		"rejected",
		"completed_on_utc",
		"deleted",
		"deleted_on_utc",
		"created_on_utc",
	).
	From(database.InvitationsTable).
	Where(database.NotDeleted)
