package partner

import (
	"strings"

	"github.com/thronelight/platform/internal/domain"
)

// LoginInput holds parameters for access-code login.
type LoginInput struct {
	AccessCode string
	// ClientKey identifies the caller for lockout purposes (usually the IP).
	ClientKey string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.AccessCode)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "access_code", Message: "required"})
	} else if len(code) > 64 {
		errs = append(errs, domain.FieldError{Field: "access_code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSubLinkInput holds parameters for creating a sub-link.
type CreateSubLinkInput struct {
	Label string
}

// Validate validates the sub-link input.
func (i CreateSubLinkInput) Validate() error {
	var errs []domain.FieldError

	label := strings.TrimSpace(i.Label)
	switch {
	case label == "":
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	case len(label) > 100:
		errs = append(errs, domain.FieldError{Field: "label", Message: "too long"})
	case domain.Slugify(label) == "":
		errs = append(errs, domain.FieldError{Field: "label", Message: "must contain letters or digits"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTeamMemberInput holds parameters for inviting a team member.
type CreateTeamMemberInput struct {
	Name  string
	Email string
	Role  domain.TeamRole
}

// Validate validates the team member input.
func (i CreateTeamMemberInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = validateEmail(errs, "email", i.Email)
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTeamMemberInput holds the mutable fields of a team member.
type UpdateTeamMemberInput struct {
	Name   *string
	Role   *domain.TeamRole
	Active *bool
}

// Validate validates the team member update.
func (i UpdateTeamMemberInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Role == nil && i.Active == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TrackClickInput describes one visit through a tracking link.
type TrackClickInput struct {
	Code      string
	IP        string
	UserAgent string
	Referrer  string
}

// CreatePartnerInput holds parameters for creating a partner account.
type CreatePartnerInput struct {
	Name              string
	Email             string
	Slug              string
	CouponCode        string
	CommissionPercent float64
	ClickBountyCents  int64
	DiscountPercent   float64
}

// Validate validates the partner input.
func (i CreatePartnerInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = validateEmail(errs, "email", i.Email)
	slug := i.Slug
	if slug == "" {
		slug = i.Name
	}
	if domain.Slugify(slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must contain letters or digits"})
	}
	errs = validateTerms(errs, i.CommissionPercent, i.ClickBountyCents, i.DiscountPercent)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePartnerInput holds the mutable fields of a partner. Nil fields are
// left unchanged; an empty CouponCode clears the coupon.
type UpdatePartnerInput struct {
	Name              *string
	Email             *string
	Slug              *string
	CouponCode        *string
	CommissionPercent *float64
	ClickBountyCents  *int64
	DiscountPercent   *float64
	Active            *bool
}

// Validate validates the partner update.
func (i UpdatePartnerInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Email != nil {
		errs = validateEmail(errs, "email", *i.Email)
	}
	if i.Slug != nil && domain.Slugify(*i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must contain letters or digits"})
	}
	var (
		commission float64
		bounty     int64
		discount   float64
	)
	if i.CommissionPercent != nil {
		commission = *i.CommissionPercent
	}
	if i.ClickBountyCents != nil {
		bounty = *i.ClickBountyCents
	}
	if i.DiscountPercent != nil {
		discount = *i.DiscountPercent
	}
	errs = validateTerms(errs, commission, bounty, discount)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, field, value string) []domain.FieldError {
	e := domain.NormalizeEmail(value)
	if e == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if !domain.ValidEmail(e) {
		return append(errs, domain.FieldError{Field: field, Message: "invalid format"})
	}
	return errs
}

func validateTerms(errs []domain.FieldError, commission float64, bounty int64, discount float64) []domain.FieldError {
	if commission < 0 || commission > 100 {
		errs = append(errs, domain.FieldError{Field: "commission_percent", Message: "must be between 0 and 100"})
	}
	if bounty < 0 {
		errs = append(errs, domain.FieldError{Field: "click_bounty_cents", Message: "must not be negative"})
	}
	if discount < 0 || discount >= 100 {
		errs = append(errs, domain.FieldError{Field: "discount_percent", Message: "must be between 0 and 100"})
	}
	return errs
}
