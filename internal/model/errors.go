package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// Domain rule violations. Callers either surface them to the user or treat
// them as a benign skip (processing guards).
var (
	ErrEventAlreadyCancelled      = errors.New("event is already cancelled")
	ErrEventHasPassed             = errors.New("event has passed")
	ErrEventCancelled             = errors.New("event is cancelled")
	ErrDateTimeInPast             = errors.New("date and time is in the past")
	ErrAlreadyProcessed           = errors.New("already processed")
	ErrNotificationAlreadySent    = errors.New("notification is already sent")
	ErrNotificationMismatch       = errors.New("notification does not belong to event or user")
	ErrUnknownNotificationType    = errors.New("unknown notification type")
	ErrInvitationPending          = errors.New("invitation for user is already pending")
	ErrInvitationCompleted        = errors.New("invitation is already completed")
	ErrInviteOwner                = errors.New("event owner can not be invited")
	ErrFriendshipRequestCompleted = errors.New("friendship request is already completed")
	ErrFriendshipRequestToSelf    = errors.New("friendship request can not be sent to self")
	ErrNotFriends                 = errors.New("users are not friends")
	ErrForbidden                  = errors.New("forbidden")
)
