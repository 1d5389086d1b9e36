package model

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipRequest struct {
	aggregateRoot

	ID             uuid.UUID
	UserID         uuid.UUID
	FriendID       uuid.UUID
	Accepted       bool
	Rejected       bool
	CompletedOnUTC *time.Time
	CreatedOnUTC   time.Time
}

func NewFriendshipRequest(userID, friendID uuid.UUID, utcNow time.Time) (*FriendshipRequest, error) {
	if userID == friendID {
		return nil, ErrFriendshipRequestToSelf
	}

	r := &FriendshipRequest{
		ID:           uuid.New(),
		UserID:       userID,
		FriendID:     friendID,
		CreatedOnUTC: utcNow,
	}
	r.record(FriendshipRequestSent{RequestID: r.ID, UserID: userID, FriendID: friendID})

	return r, nil
}

func (r *FriendshipRequest) Completed() bool {
	return r.CompletedOnUTC != nil
}

func (r *FriendshipRequest) Accept(utcNow time.Time) error {
	if r.Completed() {
		return ErrFriendshipRequestCompleted
	}

	r.Accepted = true
	r.CompletedOnUTC = &utcNow
	r.record(FriendshipRequestAccepted{RequestID: r.ID, UserID: r.UserID, FriendID: r.FriendID})

	return nil
}

func (r *FriendshipRequest) Reject(utcNow time.Time) error {
	if r.Completed() {
		return ErrFriendshipRequestCompleted
	}

	r.Rejected = true
	r.CompletedOnUTC = &utcNow
	r.record(FriendshipRequestRejected{RequestID: r.ID, UserID: r.UserID, FriendID: r.FriendID})

	return nil
}

// Friendship is one direction of a friendship; accepted requests create both
// directions.
type Friendship struct {
	UserID       uuid.UUID
	FriendID     uuid.UUID
	CreatedOnUTC time.Time
}

func NewFriendshipPair(userID, friendID uuid.UUID, utcNow time.Time) [2]*Friendship {
	return [2]*Friendship{
		{UserID: userID, FriendID: friendID, CreatedOnUTC: utcNow},
		{UserID: friendID, FriendID: userID, CreatedOnUTC: utcNow},
	}
}
