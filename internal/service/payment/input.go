package payment

import (
	"slices"
	"strings"

	"github.com/thronelight/platform/internal/domain"
)

// CheckoutInput holds parameters for starting a checkout.
type CheckoutInput struct {
	BookIDs     []string
	Email       string
	CouponCode  string
	SubLinkCode string
	// Ref is the referral cookie value: a sub-link code or partner slug.
	Ref string
}

// Validate validates the checkout input against the catalog.
func (i CheckoutInput) Validate(catalog map[string]bool) error {
	var errs []domain.FieldError

	if len(i.BookIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "book_ids", Message: "required"})
	} else if len(i.BookIDs) > 20 {
		errs = append(errs, domain.FieldError{Field: "book_ids", Message: "too many items"})
	} else {
		seen := make([]string, 0, len(i.BookIDs))
		for _, id := range i.BookIDs {
			if !catalog[id] {
				errs = append(errs, domain.FieldError{Field: "book_ids", Message: "unknown book " + id})
				continue
			}
			if slices.Contains(seen, id) {
				errs = append(errs, domain.FieldError{Field: "book_ids", Message: "duplicate book " + id})
				continue
			}
			seen = append(seen, id)
		}
	}

	if e := strings.TrimSpace(i.Email); e != "" && !domain.ValidEmail(domain.NormalizeEmail(e)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
