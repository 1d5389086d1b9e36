package user

import (
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
)

type userDTO struct {
	ID           uuid.UUID `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	CreatedOnUTC time.Time `db:"created_on_utc"`
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID:           dto.ID,
		CreatedOnUTC: dto.CreatedOnUTC.UTC(),
		UserCreate: model.UserCreate{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
		},
	}
}
