package integration

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown integration event type")

// Message is the wire form of an integration event. Type keeps the concrete
// payload type across the queue.
type Message struct {
	ID            uuid.UUID       `json:"id"`
	Type          Type            `json:"type"`
	OccurredOnUTC time.Time       `json:"occurred_on_utc"`
	Payload       json.RawMessage `json:"payload"`
}

func NewMessage(e Event, utcNow time.Time) (*Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.IntegrationType(), err)
	}

	return &Message{
		ID:            uuid.New(),
		Type:          e.IntegrationType(),
		OccurredOnUTC: utcNow.UTC(),
		Payload:       payload,
	}, nil
}

func (m *Message) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal message %v: %w", m.ID, err)
	}
	return data, nil
}

func DecodeMessage(data []byte) (*Message, error) {
	m := &Message{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	return m, nil
}

// Event decodes the payload into the concrete type named by Type.
func (m *Message) Event() (Event, error) {
	switch m.Type {
	case TypeEventCancelled:
		return decodePayload[EventCancelled](m)
	case TypeEventNameChanged:
		return decodePayload[EventNameChanged](m)
	case TypeEventDateAndTimeChanged:
		return decodePayload[EventDateAndTimeChanged](m)
	case TypeInvitationSent:
		return decodePayload[InvitationSent](m)
	case TypeFriendshipRequestSent:
		return decodePayload[FriendshipRequestSent](m)
	case TypeFriendshipRequestAccepted:
		return decodePayload[FriendshipRequestAccepted](m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
	}
}

func decodePayload[T Event](m *Message) (Event, error) {
	var payload T
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal %s payload: %w", m.Type, err)
	}
	return payload, nil
}
