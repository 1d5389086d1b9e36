// Package outbox stores integration messages in the same transaction as the
// state change that produced them.
package outbox

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
