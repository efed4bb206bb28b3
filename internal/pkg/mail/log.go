package mail

import (
	"context"
	"log/slog"
)

// Log is a Mail implementation that only writes the message to the logger.
// It is selected with mail.driver=log for local development.
type Log struct{}

// NewLog returns a Log mailer.
func NewLog() *Log {
	return &Log{}
}

// Send logs the message.
func (*Log) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "mail not sent, log driver",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.TextBody,
	)
	return nil
}

// Close implements io.Closer.
func (*Log) Close() error {
	return nil
}
