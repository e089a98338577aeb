package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ---------------------------------------------------------------------------
// Subscriber Operations
// ---------------------------------------------------------------------------

// SubscribeResult is returned by Subscribe.
type SubscribeResult struct {
	Subscriber *domain.Subscriber
	Created    bool
	EmailSent  bool
}

// Subscribe adds an email to the newsletter. Subscribing again reactivates
// the row and merges tags; only a new subscriber is sent the welcome email,
// and that send is awaited.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (*SubscribeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var name *string
	if input.Name != nil {
		if n := strings.TrimSpace(*input.Name); n != "" {
			name = &n
		}
	}
	sub, created, err := s.subscribers.Upsert(ctx, &domain.Subscriber{
		ID:     uuid.New(),
		Email:  domain.NormalizeEmail(input.Email),
		Name:   name,
		Source: input.Source,
		Tags:   normalizeTags(input.Tags),
		Status: domain.SubscriberActive,
	})
	if err != nil {
		return nil, fmt.Errorf("content.Subscribe: %w", err)
	}

	res := &SubscribeResult{Subscriber: sub, Created: created}
	if !created {
		return res, nil
	}

	s.log.InfoContext(ctx, "new subscriber", slog.String("subscriber_id", sub.ID.String()))

	msg, err := s.templates.SubscriberWelcome(sub.Email)
	if err != nil {
		s.log.ErrorContext(ctx, "render subscriber welcome", slog.String("error", err.Error()))
		return res, nil
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "subscriber welcome failed", slog.String("error", err.Error()))
		return res, nil
	}
	res.EmailSent = true
	return res, nil
}

// Unsubscribe marks an email unsubscribed. Unknown emails succeed silently.
func (s *Service) Unsubscribe(ctx context.Context, addr string) error {
	addr = domain.NormalizeEmail(addr)
	if !domain.ValidEmail(addr) {
		return domain.NewValidationError("email", "invalid format")
	}
	if err := s.subscribers.Unsubscribe(ctx, addr); err != nil {
		return fmt.Errorf("content.Unsubscribe: %w", err)
	}
	return nil
}

// ListSubscribers lists subscribers filtered by status and search text.
func (s *Service) ListSubscribers(ctx context.Context, input ListInput) (*Page[domain.Subscriber], error) {
	f, errs := input.filter()
	errs = checkEnum(errs, "status", f.Status, func(v string) bool { return domain.SubscriberStatus(v).IsValid() })
	if err := validationError(errs); err != nil {
		return nil, err
	}
	items, total, err := s.subscribers.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("content.ListSubscribers: %w", err)
	}
	return &Page[domain.Subscriber]{Items: items, Total: total}, nil
}

// UpdateSubscriber changes a subscriber's status or replaces its tags.
func (s *Service) UpdateSubscriber(ctx context.Context, id uuid.UUID, input UpdateSubscriberInput) (*domain.Subscriber, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Subscriber
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.subscribers.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Status != nil && *input.Status != sub.Status {
			changes["status"] = map[string]any{"old": sub.Status, "new": *input.Status}
			sub.Status = *input.Status
		}
		if input.Tags != nil {
			sub.Tags = normalizeTags(*input.Tags)
			changes["tags"] = sub.Tags
		}

		updated, err = s.subscribers.Update(ctx, sub)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, entitySubscriber, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateSubscriber: %w", err)
	}
	return updated, nil
}

// DeleteSubscriber removes a subscriber.
func (s *Service) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	return s.deleteAudited(ctx, entitySubscriber, id, s.subscribers.Delete)
}
