package model

import (
	"time"

	"github.com/google/uuid"
)

type UserCreate struct {
	FirstName string
	LastName  string
	Email     string
}

type User struct {
	ID           uuid.UUID
	CreatedOnUTC time.Time
	UserCreate
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
