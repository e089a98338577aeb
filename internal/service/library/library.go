package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

// Book is one title on a reader's shelf.
type Book struct {
	ID        string
	Title     string
	GrantedAt time.Time
}

// Library lists the books the signed-in reader can open.
func (s *Service) Library(ctx context.Context) ([]Book, error) {
	reader, err := s.readerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	books, err := s.shelf(ctx, reader.Email)
	if err != nil {
		return nil, fmt.Errorf("library.Library: %w", err)
	}
	return books, nil
}

// shelf collapses the active grants for email to one entry per book, in
// catalog order.
func (s *Service) shelf(ctx context.Context, email string) ([]Book, error) {
	grants, err := s.access.ListAccessByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	first := make(map[string]time.Time)
	for _, g := range grants {
		if g.RevokedAt != nil {
			continue
		}
		if at, ok := first[g.BookID]; !ok || g.GrantedAt.Before(at) {
			first[g.BookID] = g.GrantedAt
		}
	}

	books := make([]Book, 0, len(first))
	for _, id := range s.order {
		if at, ok := first[id]; ok {
			books = append(books, Book{ID: id, Title: s.title(id), GrantedAt: at})
			delete(first, id)
		}
	}
	// Grants for books no longer in the catalog are still readable.
	for id, at := range first {
		books = append(books, Book{ID: id, Title: id, GrantedAt: at})
	}
	return books, nil
}

// GetPosition returns the reader's saved position in bookID.
func (s *Service) GetPosition(ctx context.Context, bookID string) (*domain.ReadingPosition, error) {
	reader, err := s.authorizeBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	pos, err := s.readers.GetPosition(ctx, reader.ID, bookID)
	if err != nil {
		return nil, fmt.Errorf("library.GetPosition: %w", err)
	}
	return pos, nil
}

// SavePosition stores the reader's position in bookID.
func (s *Service) SavePosition(ctx context.Context, bookID string, input PositionInput) (*domain.ReadingPosition, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	reader, err := s.authorizeBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	pos := domain.ReadingPosition{
		ReaderID:   reader.ID,
		Email:      reader.Email,
		BookID:     bookID,
		CFI:        input.CFI,
		Percentage: input.Percentage,
		Chapter:    input.Chapter,
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.readers.SavePosition(ctx, pos); err != nil {
		return nil, fmt.Errorf("library.SavePosition: %w", err)
	}
	return &pos, nil
}

func (s *Service) readerFromCtx(ctx context.Context) (*domain.Reader, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.Role != domain.RoleReader {
		return nil, domain.ErrUnauthorized
	}
	r, err := s.readers.GetByID(ctx, p.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load reader: %w", err)
	}
	return r, nil
}

// authorizeBook resolves the reader and checks an active grant for bookID.
func (s *Service) authorizeBook(ctx context.Context, bookID string) (*domain.Reader, error) {
	if bookID == "" {
		return nil, domain.NewValidationError("book_id", "required")
	}
	reader, err := s.readerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.access.HasActiveAccess(ctx, reader.Email, bookID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	return reader, nil
}

// ActiveReaders lists readers whose position changed within window. A zero
// window means DefaultActiveWindow.
func (s *Service) ActiveReaders(ctx context.Context, window time.Duration) ([]domain.ReadingPosition, error) {
	if window == 0 {
		window = DefaultActiveWindow
	}
	if window < 0 || window > maxActiveWindow {
		return nil, domain.NewValidationError("window", "must be between 1m and 24h")
	}
	positions, err := s.readers.ActiveSince(ctx, s.now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("library.ActiveReaders: %w", err)
	}
	return positions, nil
}
