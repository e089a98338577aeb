package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

const (
	libraryCodePrefix = "LIB"
	auditEntity       = "library_access"
)

// GrantResult is returned by a manual grant.
type GrantResult struct {
	AccessCode string
	Grants     []domain.LibraryAccess
	EmailSent  bool
}

// GrantAccess grants books to an email outside of checkout. All grants share
// one new access code, which is emailed to the reader.
func (s *Service) GrantAccess(ctx context.Context, input GrantInput) (*GrantResult, error) {
	if err := input.Validate(s.titles); err != nil {
		return nil, err
	}

	code, err := auth.GenerateAccessCode(libraryCodePrefix)
	if err != nil {
		return nil, fmt.Errorf("library.GrantAccess: %w", err)
	}
	addr := domain.NormalizeEmail(input.Email)

	grants := make([]domain.LibraryAccess, 0, len(input.BookIDs))
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, bookID := range input.BookIDs {
			g, err := s.access.GrantAccess(ctx, &domain.LibraryAccess{
				ID:         uuid.New(),
				Email:      addr,
				BookID:     bookID,
				AccessCode: code,
				GrantedAt:  s.now().UTC(),
			})
			if err != nil {
				return err
			}
			if err := s.audit.Record(ctx, auditEntity, g.ID, domain.AuditCreate, map[string]any{
				"email":   addr,
				"book_id": bookID,
			}); err != nil {
				return err
			}
			grants = append(grants, *g)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("library.GrantAccess: %w", err)
	}

	s.log.InfoContext(ctx, "library access granted", slog.Int("books", len(grants)))

	return &GrantResult{AccessCode: code, Grants: grants, EmailSent: s.sendAccess(ctx, addr, input.BookIDs, code)}, nil
}

func (s *Service) sendAccess(ctx context.Context, to string, bookIDs []string, code string) bool {
	books := make([]string, len(bookIDs))
	for i, id := range bookIDs {
		books[i] = s.title(id)
	}
	msg, err := s.templates.LibraryAccess(email.LibraryAccess{Email: to, Books: books, AccessCode: code})
	if err != nil {
		s.log.ErrorContext(ctx, "render library access", slog.String("error", err.Error()))
		return false
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "library access email failed", slog.String("error", err.Error()))
		return false
	}
	return true
}

// ListAccess returns every grant for email, revoked ones included.
func (s *Service) ListAccess(ctx context.Context, addr string) ([]domain.LibraryAccess, error) {
	addr = domain.NormalizeEmail(addr)
	if !domain.ValidEmail(addr) {
		return nil, domain.NewValidationError("email", "invalid format")
	}
	grants, err := s.access.ListAccessByEmail(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("library.ListAccess: %w", err)
	}
	return grants, nil
}

// RevokeAccess revokes one grant.
func (s *Service) RevokeAccess(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.access.RevokeAccess(ctx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditDelete, nil)
	})
	if err != nil {
		return fmt.Errorf("library.RevokeAccess: %w", err)
	}
	s.log.InfoContext(ctx, "library access revoked", slog.String("grant_id", id.String()))
	return nil
}
