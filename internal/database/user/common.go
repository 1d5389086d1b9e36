package user

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
		"first_name",
		"last_name",
		"email",
		"created_on_utc",
	).
	From(database.UsersTable)
