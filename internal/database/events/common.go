package events

import (
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var eventColumns = []string{
	"id",
	"kind",
	"user_id",
	"name",
	"category",
	"date_time_utc",
	"cancelled",
	"processed",
	"deleted",
	"deleted_on_utc",
	"created_on_utc",
	"modified_on_utc",
}

var baseQuery = database.PSQL.
	Select(eventColumns...).
	From(database.EventsTable).
	Where(database.NotDeleted)
