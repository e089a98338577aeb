// Package email sends transactional email through Resend, Amazon SES or,
// in development, the application log.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thronelight/platform/internal/config"
)

// Message is one outgoing HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
	// Tags label the message at the provider, e.g. {"kind": "order_confirmation"}.
	Tags map[string]string
}

// Sender delivers a message through a provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the sender selected by cfg.Provider.
func NewSender(ctx context.Context, cfg config.EmailConfig, log *slog.Logger) (Sender, error) {
	switch strings.ToLower(cfg.Provider) {
	case "resend":
		return NewResendSender(cfg.APIKey, cfg.From), nil
	case "ses":
		return NewSESSender(ctx, cfg.SESRegion, cfg.SESEndpoint, cfg.From)
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.Provider)
	}
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("component", "email")}
}

// Send logs the message envelope.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "email.send",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("kind", msg.Tags["kind"]),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return nil
}
