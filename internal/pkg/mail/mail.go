// Package mail renders and sends the emails of the platform.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
)

const timeLayout = "Mon, 02 Jan 2006 15:04"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Transport delivers a rendered message.
type Transport interface {
	Send(ctx context.Context, m *Message) error
}

// Sender has one method per email the platform sends.
type Sender struct {
	transport Transport
}

func NewSender(transport Transport) *Sender {
	return &Sender{transport: transport}
}

// SendReminder sends a reminder rendered by the notification type.
func (s *Sender) SendReminder(ctx context.Context, to *model.User, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

func (s *Sender) SendEventCancelled(ctx context.Context, to *model.User, eventName string, dateTimeUTC time.Time) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s has been cancelled", eventName),
		fmt.Sprintf("Hi %s,\n\n%q planned for %s UTC has been cancelled.\n",
			to.FirstName, eventName, dateTimeUTC.Format(timeLayout)),
	)
}

func (s *Sender) SendEventRescheduled(ctx context.Context, to *model.User, event *model.Event, previousDateTimeUTC time.Time) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s has been rescheduled", event.Name),
		fmt.Sprintf("Hi %s,\n\n%q moved from %s UTC to %s UTC.\n",
			to.FirstName, event.Name, previousDateTimeUTC.Format(timeLayout), event.DateTimeUTC.Format(timeLayout)),
	)
}

func (s *Sender) SendEventRenamed(ctx context.Context, to *model.User, event *model.Event, previousName string) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s is now called %s", previousName, event.Name),
		fmt.Sprintf("Hi %s,\n\n%q on %s UTC has been renamed to %q.\n",
			to.FirstName, previousName, event.DateTimeUTC.Format(timeLayout), event.Name),
	)
}

func (s *Sender) SendInvitation(ctx context.Context, to, from *model.User, event *model.Event) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s invited you to %s", from.FullName(), event.Name),
		fmt.Sprintf("Hi %s,\n\n%s invited you to %q (%s) on %s UTC.\n",
			to.FirstName, from.FullName(), event.Name, event.Category, event.DateTimeUTC.Format(timeLayout)),
	)
}

func (s *Sender) SendFriendshipRequest(ctx context.Context, to, from *model.User) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s wants to be your friend", from.FullName()),
		fmt.Sprintf("Hi %s,\n\n%s sent you a friendship request.\n", to.FirstName, from.FullName()),
	)
}

func (s *Sender) SendFriendshipAccepted(ctx context.Context, to, friend *model.User) error {
	return s.send(ctx, to,
		fmt.Sprintf("%s accepted your friendship request", friend.FullName()),
		fmt.Sprintf("Hi %s,\n\nyou and %s are friends now.\n", to.FirstName, friend.FullName()),
	)
}

func (s *Sender) send(ctx context.Context, to *model.User, subject, body string) error {
	if to.Email == "" {
		return fmt.Errorf("user %v has no email", to.ID)
	}

	return s.transport.Send(ctx, &Message{
		To:      to.Email,
		Subject: subject,
		Body:    body,
	})
}
