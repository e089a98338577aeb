package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Order is a completed, refunded or disputed purchase. At most one Order
// exists per external payment session.
type Order struct {
	ID               uuid.UUID
	StripeSessionID  string
	PaymentIntentID  *string
	Email            string
	Country          *string
	AmountCents      int64
	Currency         string
	Status           OrderStatus
	PartnerID        *uuid.UUID
	SubLinkCode      *string
	CommissionCents  int64
	CommissionStatus CommissionStatus
	MaturesAt        *time.Time
	BookIDs          []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LibraryAccess grants a reader access to one digital book.
type LibraryAccess struct {
	ID         uuid.UUID
	Email      string
	BookID     string
	OrderID    *uuid.UUID
	AccessCode string
	GrantedAt  time.Time
	RevokedAt  *time.Time
}

// IsActive reports whether the grant has not been revoked.
func (a *LibraryAccess) IsActive() bool { return a.RevokedAt == nil }

// WebhookEvent records a processed payment-processor event.
type WebhookEvent struct {
	ID          string
	Type        string
	ProcessedAt time.Time
}

// CountryStat is one point of the admin analytics map.
type CountryStat struct {
	Country      string
	Orders       int64
	RevenueCents int64
}

// CommissionFor returns the commission on amountCents at percent, rounded
// half away from zero to whole cents.
func CommissionFor(amountCents int64, percent float64) int64 {
	if amountCents <= 0 || percent <= 0 {
		return 0
	}
	return int64(math.Round(float64(amountCents) * percent / 100))
}

// MaturityDate is the date after which a commission is payable.
func MaturityDate(completedAt time.Time, days int) time.Time {
	return completedAt.AddDate(0, 0, days)
}
