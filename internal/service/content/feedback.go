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
// Feedback Operations
// ---------------------------------------------------------------------------

// CreateFeedback stores a public feedback item.
func (s *Service) CreateFeedback(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fb := &domain.Feedback{
		ID:      uuid.New(),
		Type:    input.Type,
		Message: strings.TrimSpace(input.Message),
		Email:   normalizedEmail(input.Email),
		Page:    input.Page,
		Status:  domain.FeedbackNew,
	}
	created, err := s.feedback.Create(ctx, fb)
	if err != nil {
		return nil, fmt.Errorf("content.CreateFeedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback received", slog.String("feedback_id", created.ID.String()), slog.String("type", created.Type.String()))
	return created, nil
}

// ListFeedback lists feedback filtered by status, type and search text.
func (s *Service) ListFeedback(ctx context.Context, input ListInput) (*Page[domain.Feedback], error) {
	f, errs := input.filter()
	errs = checkEnum(errs, "status", f.Status, func(v string) bool { return domain.FeedbackStatus(v).IsValid() })
	errs = checkEnum(errs, "type", f.Type, func(v string) bool { return domain.FeedbackType(v).IsValid() })
	if err := validationError(errs); err != nil {
		return nil, err
	}
	items, total, err := s.feedback.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("content.ListFeedback: %w", err)
	}
	return &Page[domain.Feedback]{Items: items, Total: total}, nil
}

// UpdateFeedback changes triage status or admin notes.
func (s *Service) UpdateFeedback(ctx context.Context, id uuid.UUID, input UpdateFeedbackInput) (*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Feedback
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		fb, err := s.feedback.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Status != nil && *input.Status != fb.Status {
			changes["status"] = map[string]any{"old": fb.Status, "new": *input.Status}
			fb.Status = *input.Status
		}
		if input.AdminNotes != nil {
			notes := strings.TrimSpace(*input.AdminNotes)
			fb.AdminNotes = &notes
			if notes == "" {
				fb.AdminNotes = nil
			}
			changes["admin_notes"] = notes
		}

		updated, err = s.feedback.Update(ctx, fb)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, entityFeedback, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateFeedback: %w", err)
	}
	return updated, nil
}

// DeleteFeedback removes a feedback item.
func (s *Service) DeleteFeedback(ctx context.Context, id uuid.UUID) error {
	return s.deleteAudited(ctx, entityFeedback, id, s.feedback.Delete)
}
