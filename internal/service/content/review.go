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
// Review Operations
// ---------------------------------------------------------------------------

// CreateReview stores a public review pending moderation.
func (s *Service) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rv := &domain.Review{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(input.Name),
		Email:  normalizedEmail(input.Email),
		BookID: input.BookID,
		Rating: input.Rating,
		Title:  input.Title,
		Body:   strings.TrimSpace(input.Body),
		Status: domain.ReviewPending,
	}
	created, err := s.reviews.Create(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("content.CreateReview: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted", slog.String("review_id", created.ID.String()), slog.Int("rating", created.Rating))
	return created, nil
}

// PublicReviews lists approved reviews, featured first.
func (s *Service) PublicReviews(ctx context.Context, limit, offset int) (*Page[domain.Review], error) {
	approved := string(domain.ReviewApproved)
	items, total, err := s.reviews.List(ctx, domain.ListFilter{Status: &approved, Limit: limit, Offset: max(offset, 0)})
	if err != nil {
		return nil, fmt.Errorf("content.PublicReviews: %w", err)
	}
	return &Page[domain.Review]{Items: items, Total: total}, nil
}

// ListReviews lists reviews for moderation.
func (s *Service) ListReviews(ctx context.Context, input ListInput) (*Page[domain.Review], error) {
	f, errs := input.filter()
	errs = checkEnum(errs, "status", f.Status, func(v string) bool { return domain.ReviewStatus(v).IsValid() })
	if err := validationError(errs); err != nil {
		return nil, err
	}
	items, total, err := s.reviews.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("content.ListReviews: %w", err)
	}
	return &Page[domain.Review]{Items: items, Total: total}, nil
}

// UpdateReview changes a review's moderation status or featured flag.
func (s *Service) UpdateReview(ctx context.Context, id uuid.UUID, input UpdateReviewInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rv, err := s.reviews.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Status != nil && *input.Status != rv.Status {
			changes["status"] = map[string]any{"old": rv.Status, "new": *input.Status}
			rv.Status = *input.Status
		}
		if input.Featured != nil && *input.Featured != rv.Featured {
			changes["featured"] = map[string]any{"old": rv.Featured, "new": *input.Featured}
			rv.Featured = *input.Featured
		}

		updated, err = s.reviews.Update(ctx, rv)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, entityReview, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateReview: %w", err)
	}
	return updated, nil
}

// DeleteReview removes a review.
func (s *Service) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return s.deleteAudited(ctx, entityReview, id, s.reviews.Delete)
}

// deleteAudited deletes one row and records the deletion in one transaction.
func (s *Service) deleteAudited(ctx context.Context, entity string, id uuid.UUID, del func(context.Context, uuid.UUID) error) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := del(ctx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, entity, id, domain.AuditDelete, nil)
	})
	if err != nil {
		return fmt.Errorf("content.Delete %s: %w", entity, err)
	}
	s.log.InfoContext(ctx, "content deleted", slog.String("entity", entity), slog.String("id", id.String()))
	return nil
}

func normalizedEmail(e *string) *string {
	if e == nil {
		return nil
	}
	v := domain.NormalizeEmail(*e)
	if v == "" {
		return nil
	}
	return &v
}
