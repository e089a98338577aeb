package library

import (
	"strings"
	"time"

	"github.com/thronelight/platform/internal/domain"
)

// LoginInput holds the reader's credentials.
type LoginInput struct {
	Email      string
	AccessCode string
	ClientKey  string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ValidEmail(domain.NormalizeEmail(i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if strings.TrimSpace(i.AccessCode) == "" {
		errs = append(errs, domain.FieldError{Field: "access_code", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PositionInput is a reading position reported by the reader app.
type PositionInput struct {
	CFI        string
	Percentage float64
	Chapter    *string
}

// Validate validates the position input.
func (i PositionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CFI) == "" {
		errs = append(errs, domain.FieldError{Field: "cfi", Message: "required"})
	} else if len(i.CFI) > 2048 {
		errs = append(errs, domain.FieldError{Field: "cfi", Message: "too long"})
	}
	if i.Percentage < 0 || i.Percentage > 100 {
		errs = append(errs, domain.FieldError{Field: "percentage", Message: "must be between 0 and 100"})
	}
	if i.Chapter != nil && len(*i.Chapter) > 500 {
		errs = append(errs, domain.FieldError{Field: "chapter", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GrantInput holds a manual library grant.
type GrantInput struct {
	Email   string
	BookIDs []string
}

// Validate validates the grant against the known books.
func (i GrantInput) Validate(titles map[string]string) error {
	var errs []domain.FieldError

	if !domain.ValidEmail(domain.NormalizeEmail(i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if len(i.BookIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "book_ids", Message: "required"})
	}
	seen := make(map[string]bool, len(i.BookIDs))
	for _, id := range i.BookIDs {
		if _, ok := titles[id]; !ok {
			errs = append(errs, domain.FieldError{Field: "book_ids", Message: "unknown book " + id})
			continue
		}
		if seen[id] {
			errs = append(errs, domain.FieldError{Field: "book_ids", Message: "duplicate book " + id})
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DefaultActiveWindow is how recently a reader must have moved to count as
// active.
const DefaultActiveWindow = 15 * time.Minute

const maxActiveWindow = 24 * time.Hour
