package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogTransport only logs messages. Used when MAIL_DRY_RUN is set.
type LogTransport struct {
	logger *zap.SugaredLogger
}

func NewLogTransport(logger *zap.SugaredLogger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, m *Message) error {
	t.logger.Infow("email", "to", m.To, "subject", m.Subject, "body", m.Body)
	return nil
}
