package database

import sq "github.com/Masterminds/squirrel"

var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable              = "users"
	EventsTable             = "events"
	AttendeesTable          = "attendees"
	NotificationsTable      = "notifications"
	InvitationsTable        = "invitations"
	FriendshipRequestsTable = "friendship_requests"
	FriendshipsTable        = "friendships"
	OutboxTable             = "outbox_messages"
)

// NotDeleted is added to every read of soft-deleted tables.
var NotDeleted = sq.Eq{"deleted": false}
