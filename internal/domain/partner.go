package domain

import (
	"time"

	"github.com/google/uuid"
)

// Partner is an affiliate account. Its access code is the sole credential
// for partner-portal login and is unique across partners and team members.
type Partner struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Slug              string
	CouponCode        *string
	AccessCode        string
	CommissionPercent float64
	ClickBountyCents  int64
	DiscountPercent   float64
	Active            bool
	Clicks            int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TeamMember is a view-scoped sub-account under a Partner.
type TeamMember struct {
	ID         uuid.UUID
	PartnerID  uuid.UUID
	Name       string
	Email      string
	Role       TeamRole
	AccessCode string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SubLink is a secondary tracking code nested under a partner's main link.
type SubLink struct {
	ID           uuid.UUID
	PartnerID    uuid.UUID
	TeamMemberID *uuid.UUID
	Code         string
	Label        string
	Clicks       int64
	Sales        int64
	CreatedAt    time.Time
}

// Click is one recorded visit through a partner or sub-link code.
type Click struct {
	ID            uuid.UUID
	PartnerID     uuid.UUID
	SubLinkID     *uuid.UUID
	IPHash        string
	UserAgentHash string
	Referrer      string
	CreatedAt     time.Time
}

// Permissions is what a portal principal may see and do.
type Permissions struct {
	IsViewOnly        bool
	CanViewClicks     bool
	CanViewSales      bool
	CanViewFinancials bool
	CanCreateSubLinks bool
	CanManageTeam     bool
}

// PartnerPermissions are the permissions of the partner account owner.
func PartnerPermissions() Permissions {
	return Permissions{
		CanViewClicks:     true,
		CanViewSales:      true,
		CanViewFinancials: true,
		CanCreateSubLinks: true,
		CanManageTeam:     true,
	}
}

// Permissions returns the view scope of a team role. Team member access is
// read-only for every role.
func (r TeamRole) Permissions() Permissions {
	p := Permissions{
		IsViewOnly:        true,
		CanViewClicks:     true,
		CanCreateSubLinks: true,
	}
	switch r {
	case TeamRoleViewAll:
		p.CanViewSales = true
		p.CanViewFinancials = true
	case TeamRoleViewNoFinancials:
		p.CanViewSales = true
	case TeamRoleViewClicksOnly:
		p.CanCreateSubLinks = false
	default:
		p.CanViewClicks = false
		p.CanCreateSubLinks = false
	}
	return p
}

// PartnerDashboard aggregates the portal counters for one partner.
// Fields the viewer may not see are left nil.
type PartnerDashboard struct {
	Partner     *Partner
	TeamMember  *TeamMember
	Permissions Permissions
	Clicks      int64
	SubLinks    []SubLink
	Sales       *int64
	Financials  *PartnerFinancials
}

// PartnerFinancials sums revenue and commission for a partner in cents.
type PartnerFinancials struct {
	RevenueCents           int64
	CommissionPendingCents int64
	CommissionPayableCents int64
	CommissionVoidedCents  int64
	CommissionHeldCents    int64
	ClickBountyCents       int64
	Currency               string
}
