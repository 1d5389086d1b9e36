package outbox

import (
	"encoding/json"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/integration"
	"github.com/google/uuid"
)

type messageDTO struct {
	ID            uuid.UUID `db:"id"`
	Type          string    `db:"type"`
	Content       string    `db:"content"`
	OccurredOnUTC time.Time `db:"occurred_on_utc"`
}

func mapToMessage(d *messageDTO) *integration.Message {
	return &integration.Message{
		ID:            d.ID,
		Type:          integration.Type(d.Type),
		OccurredOnUTC: d.OccurredOnUTC.UTC(),
		Payload:       json.RawMessage(d.Content),
	}
}
