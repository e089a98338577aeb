package order

import (
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ListInput holds the admin order filters as they arrive from the query
// string.
type ListInput struct {
	Status           string
	CommissionStatus string
	PartnerID        string
	Email            string
	Limit            int
	Offset           int
}

// Filter validates the input and converts it to a repository filter.
func (i ListInput) Filter() (domain.OrderFilter, error) {
	var (
		errs []domain.FieldError
		f    = domain.OrderFilter{Limit: i.Limit, Offset: i.Offset}
	)

	if v := strings.TrimSpace(i.Status); v != "" {
		s := domain.OrderStatus(v)
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
		}
		f.Status = &s
	}
	if v := strings.TrimSpace(i.CommissionStatus); v != "" {
		s := domain.CommissionStatus(v)
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "commission_status", Message: "invalid value"})
		}
		f.CommissionStatus = &s
	}
	if v := strings.TrimSpace(i.PartnerID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "partner_id", Message: "invalid uuid"})
		}
		f.PartnerID = &id
	}
	if v := strings.TrimSpace(i.Email); v != "" {
		f.Email = &v
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.OrderFilter{}, &domain.ValidationError{Errors: errs}
	}
	return f, nil
}
