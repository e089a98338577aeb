package email

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Notifier sends mail either awaited (Deliver) or in the background
// (Notify). Background failures are only logged.
type Notifier struct {
	sender  Sender
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewNotifier wraps sender. timeout bounds each background send.
func NewNotifier(sender Sender, log *slog.Logger, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{sender: sender, log: log.With("component", "notifier"), timeout: timeout}
}

// Deliver sends msg and returns the provider's error.
func (n *Notifier) Deliver(ctx context.Context, msg Message) error {
	if err := n.sender.Send(ctx, msg); err != nil {
		n.log.ErrorContext(ctx, "email delivery failed",
			slog.String("kind", msg.Tags["kind"]),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Notify sends msg on a background goroutine detached from ctx's
// cancellation.
func (n *Notifier) Notify(ctx context.Context, msg Message) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()

		if err := n.sender.Send(sendCtx, msg); err != nil {
			n.log.WarnContext(sendCtx, "email notification failed",
				slog.String("kind", msg.Tags["kind"]),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until background notifications finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
