package admin

import (
	"fmt"
	"strings"

	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

// LoginInput holds admin credentials.
type LoginInput struct {
	Email     string
	Password  string
	ClientKey string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateAdminInput describes a new admin account.
type CreateAdminInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.AdminRole
	Scopes   []domain.AdminScope
}

// Validate validates the create input.
func (i CreateAdminInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ValidEmail(domain.NormalizeEmail(i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if n := strings.TrimSpace(i.Name); n == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(n) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Password) < auth.MinPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", auth.MinPasswordLen)})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}
	errs = append(errs, validateScopes(i.Scopes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAdminInput carries optional changes to an admin account.
type UpdateAdminInput struct {
	Name   *string
	Role   *domain.AdminRole
	Scopes *[]domain.AdminScope
}

// Validate validates the update input.
func (i UpdateAdminInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if n := strings.TrimSpace(*i.Name); n == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(n) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}
	if i.Scopes != nil {
		errs = append(errs, validateScopes(*i.Scopes)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateScopes(scopes []domain.AdminScope) []domain.FieldError {
	var errs []domain.FieldError
	for _, s := range scopes {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "scopes", Message: "unknown scope " + string(s)})
		}
	}
	return errs
}

// dedupeScopes keeps the first occurrence of each scope.
func dedupeScopes(scopes []domain.AdminScope) []domain.AdminScope {
	out := make([]domain.AdminScope, 0, len(scopes))
	seen := make(map[domain.AdminScope]bool, len(scopes))
	for _, s := range scopes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
