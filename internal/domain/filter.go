package domain

import "github.com/google/uuid"

// ListFilter is the common filter of admin queue listings.
// Every field is optional; zero Limit means the repository default.
type ListFilter struct {
	Status   *string
	Type     *string
	Priority *string
	Search   *string
	Limit    int
	Offset   int
}

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status           *OrderStatus
	CommissionStatus *CommissionStatus
	PartnerID        *uuid.UUID
	Email            *string
	Limit            int
	Offset           int
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// PageSize clamps a requested limit to the allowed range.
func PageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
