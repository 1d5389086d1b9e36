package friendship

import (
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var requestsBaseQuery = database.PSQL.
	Select(
		"id",
		"user_id",
		"friend_id",
		"accepted",
		"rejected",
		"completed_on_utc",
		"created_on_utc",
	).
	From(database.FriendshipRequestsTable)
