package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"

	"github.com/SergeyKozhin/event-reminder-backend/internal/pkg/oauth"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailTransport sends messages from the mailbox the refresh token belongs to.
type GmailTransport struct {
	service *gmail.Service
	from    string
}

func NewGmailTransport(ctx context.Context, from, secretPath, clientType, refreshToken string) (*GmailTransport, error) {
	ts, err := oauth.GoogleTokenSource(ctx, secretPath, clientType, refreshToken, gmail.GmailSendScope)
	if err != nil {
		return nil, err
	}

	service, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Gmail API: %w", err)
	}

	return &GmailTransport{service: service, from: from}, nil
}

func (t *GmailTransport) Send(ctx context.Context, m *Message) error {
	raw := base64.URLEncoding.EncodeToString(buildMessage(t.from, m))

	if _, err := t.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send to %s: %w", m.To, err)
	}

	return nil
}

func buildMessage(from string, m *Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	return b.Bytes()
}
