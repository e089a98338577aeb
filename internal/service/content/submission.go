package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
)

// ---------------------------------------------------------------------------
// Submission Operations
// ---------------------------------------------------------------------------

// CreateSubmission records a manuscript submission and sends the author an
// acknowledgement in the background.
func (s *Service) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:         uuid.New(),
		AuthorName: strings.TrimSpace(input.AuthorName),
		Email:      domain.NormalizeEmail(input.Email),
		Title:      strings.TrimSpace(input.Title),
		Genre:      strings.TrimSpace(input.Genre),
		WordCount:  input.WordCount,
		Synopsis:   strings.TrimSpace(input.Synopsis),
		Status:     domain.SubmissionReceived,
	}
	if input.SampleURL != nil && *input.SampleURL != "" {
		sub.SampleURL = input.SampleURL
	}
	created, err := s.submissions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("content.CreateSubmission: %w", err)
	}

	s.log.InfoContext(ctx, "submission received", slog.String("submission_id", created.ID.String()))

	msg, err := s.templates.SubmissionReceived(email.SubmissionReceived{
		Email: created.Email,
		Name:  created.AuthorName,
		Title: created.Title,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "render submission receipt", slog.String("error", err.Error()))
	} else {
		s.notifier.Notify(ctx, msg)
	}
	return created, nil
}

// ListSubmissions lists submissions filtered by status and search text.
func (s *Service) ListSubmissions(ctx context.Context, input ListInput) (*Page[domain.Submission], error) {
	f, errs := input.filter()
	errs = checkEnum(errs, "status", f.Status, func(v string) bool { return domain.SubmissionStatus(v).IsValid() })
	if err := validationError(errs); err != nil {
		return nil, err
	}
	items, total, err := s.submissions.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("content.ListSubmissions: %w", err)
	}
	return &Page[domain.Submission]{Items: items, Total: total}, nil
}

// UpdateSubmission records an editorial status or notes.
func (s *Service) UpdateSubmission(ctx context.Context, id uuid.UUID, input UpdateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Submission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.submissions.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Status != nil && *input.Status != sub.Status {
			changes["status"] = map[string]any{"old": sub.Status, "new": *input.Status}
			sub.Status = *input.Status
		}
		if input.EditorNotes != nil {
			notes := strings.TrimSpace(*input.EditorNotes)
			sub.EditorNotes = &notes
			if notes == "" {
				sub.EditorNotes = nil
			}
			changes["editor_notes"] = notes
		}

		updated, err = s.submissions.Update(ctx, sub)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, entitySubmission, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateSubmission: %w", err)
	}
	return updated, nil
}

// DeleteSubmission removes a submission.
func (s *Service) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	return s.deleteAudited(ctx, entitySubmission, id, s.submissions.Delete)
}
