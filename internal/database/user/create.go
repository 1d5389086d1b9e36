package user

import (
	"context"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

func (*Repository) CreateUser(ctx context.Context, q database.Queryable, user *model.User) error {
	qb := database.PSQL.
		Insert(database.UsersTable).
		Columns("id", "first_name", "last_name", "email", "created_on_utc").
		Values(
			user.ID,
			user.FirstName,
			user.LastName,
			user.Email,
			user.CreatedOnUTC,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return database.MapError(err)
	}

	return nil
}
