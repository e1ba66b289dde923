package mail

import (
	"context"
	"log/slog"
)

// LogMailer logs messages instead of sending them. Used in dev when no
// provider key is configured so reminder runs stay observable.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.Logger.Info("mail (not sent, no provider configured)",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.HTML),
	)
	return nil
}
