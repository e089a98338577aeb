package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/content"
	"github.com/thronelight/platform/internal/service/gathering"
	"github.com/thronelight/platform/internal/service/library"
	"github.com/thronelight/platform/internal/service/partner"
)

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func mapSlice[S, D any](in []S, f func(*S) D) []D {
	out := make([]D, 0, len(in))
	for i := range in {
		out = append(out, f(&in[i]))
	}
	return out
}

func toPage[S, D any](p *content.Page[S], f func(*S) D) pageResponse[D] {
	return pageResponse[D]{Items: mapSlice(p.Items, f), Total: p.Total}
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ---------------------------------------------------------------------------
// Partners
// ---------------------------------------------------------------------------

type partnerResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Slug              string    `json:"slug"`
	CouponCode        *string   `json:"couponCode,omitempty"`
	AccessCode        string    `json:"accessCode,omitempty"`
	CommissionPercent float64   `json:"commissionPercent"`
	ClickBountyCents  int64     `json:"clickBountyCents"`
	DiscountPercent   float64   `json:"discountPercent"`
	Active            bool      `json:"active"`
	Clicks            int64     `json:"clicks"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// toPartnerResponse omits the access code; admin endpoints use
// toPartnerAdminResponse to include it.
func toPartnerResponse(p *domain.Partner) partnerResponse {
	return partnerResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Email:             p.Email,
		Slug:              p.Slug,
		CouponCode:        p.CouponCode,
		CommissionPercent: p.CommissionPercent,
		ClickBountyCents:  p.ClickBountyCents,
		DiscountPercent:   p.DiscountPercent,
		Active:            p.Active,
		Clicks:            p.Clicks,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toPartnerAdminResponse(p *domain.Partner) partnerResponse {
	resp := toPartnerResponse(p)
	resp.AccessCode = p.AccessCode
	return resp
}

type teamMemberResponse struct {
	ID         string    `json:"id"`
	PartnerID  string    `json:"partnerId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	AccessCode string    `json:"accessCode,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toTeamMemberResponse(m *domain.TeamMember) teamMemberResponse {
	return teamMemberResponse{
		ID:        m.ID.String(),
		PartnerID: m.PartnerID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role.String(),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

type subLinkResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Label        string    `json:"label"`
	TeamMemberID *string   `json:"teamMemberId,omitempty"`
	Clicks       int64     `json:"clicks"`
	Sales        int64     `json:"sales"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toSubLinkResponse(l *domain.SubLink) subLinkResponse {
	return subLinkResponse{
		ID:           l.ID.String(),
		Code:         l.Code,
		Label:        l.Label,
		TeamMemberID: uuidPtrString(l.TeamMemberID),
		Clicks:       l.Clicks,
		Sales:        l.Sales,
		CreatedAt:    l.CreatedAt,
	}
}

type permissionsResponse struct {
	IsViewOnly        bool `json:"isViewOnly"`
	CanViewClicks     bool `json:"canViewClicks"`
	CanViewSales      bool `json:"canViewSales"`
	CanViewFinancials bool `json:"canViewFinancials"`
	CanCreateSubLinks bool `json:"canCreateSubLinks"`
	CanManageTeam     bool `json:"canManageTeam"`
}

func toPermissionsResponse(p domain.Permissions) permissionsResponse {
	return permissionsResponse(p)
}

type sessionInfoResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Role          string               `json:"role,omitempty"`
	Partner       *partnerResponse     `json:"partner,omitempty"`
	TeamMember    *teamMemberResponse  `json:"teamMember,omitempty"`
	Permissions   *permissionsResponse `json:"permissions,omitempty"`
}

func toSessionInfoResponse(info *partner.SessionInfo) sessionInfoResponse {
	resp := sessionInfoResponse{Authenticated: info.Authenticated}
	if !info.Authenticated {
		return resp
	}
	resp.Role = info.Role.String()
	if info.Partner != nil {
		p := toPartnerResponse(info.Partner)
		resp.Partner = &p
	}
	if info.TeamMember != nil {
		m := toTeamMemberResponse(info.TeamMember)
		resp.TeamMember = &m
	}
	perms := toPermissionsResponse(info.Permissions)
	resp.Permissions = &perms
	return resp
}

type financialsResponse struct {
	RevenueCents           int64  `json:"revenueCents"`
	CommissionPendingCents int64  `json:"commissionPendingCents"`
	CommissionPayableCents int64  `json:"commissionPayableCents"`
	CommissionVoidedCents  int64  `json:"commissionVoidedCents"`
	CommissionHeldCents    int64  `json:"commissionHeldCents"`
	ClickBountyCents       int64  `json:"clickBountyCents"`
	Currency               string `json:"currency"`
}

type dashboardResponse struct {
	Partner     partnerResponse     `json:"partner"`
	TeamMember  *teamMemberResponse `json:"teamMember,omitempty"`
	Permissions permissionsResponse `json:"permissions"`
	Clicks      int64               `json:"clicks"`
	SubLinks    []subLinkResponse   `json:"subLinks"`
	Sales       *int64              `json:"sales,omitempty"`
	Financials  *financialsResponse `json:"financials,omitempty"`
}

func toDashboardResponse(d *domain.PartnerDashboard) dashboardResponse {
	resp := dashboardResponse{
		Partner:     toPartnerResponse(d.Partner),
		Permissions: toPermissionsResponse(d.Permissions),
		Clicks:      d.Clicks,
		SubLinks:    mapSlice(d.SubLinks, toSubLinkResponse),
		Sales:       d.Sales,
	}
	if d.TeamMember != nil {
		m := toTeamMemberResponse(d.TeamMember)
		resp.TeamMember = &m
	}
	if d.Financials != nil {
		f := financialsResponse(*d.Financials)
		resp.Financials = &f
	}
	return resp
}

// ---------------------------------------------------------------------------
// Orders and library
// ---------------------------------------------------------------------------

type orderResponse struct {
	ID               string     `json:"id"`
	StripeSessionID  string     `json:"stripeSessionId"`
	Email            string     `json:"email"`
	Country          *string    `json:"country,omitempty"`
	AmountCents      int64      `json:"amountCents"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	PartnerID        *string    `json:"partnerId,omitempty"`
	SubLinkCode      *string    `json:"subLinkCode,omitempty"`
	CommissionCents  int64      `json:"commissionCents"`
	CommissionStatus string     `json:"commissionStatus"`
	MaturesAt        *time.Time `json:"maturesAt,omitempty"`
	BookIDs          []string   `json:"bookIds"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:               o.ID.String(),
		StripeSessionID:  o.StripeSessionID,
		Email:            o.Email,
		Country:          o.Country,
		AmountCents:      o.AmountCents,
		Currency:         o.Currency,
		Status:           string(o.Status),
		PartnerID:        uuidPtrString(o.PartnerID),
		SubLinkCode:      o.SubLinkCode,
		CommissionCents:  o.CommissionCents,
		CommissionStatus: string(o.CommissionStatus),
		MaturesAt:        o.MaturesAt,
		BookIDs:          o.BookIDs,
		CreatedAt:        o.CreatedAt,
	}
}

type countryStatResponse struct {
	Country      string `json:"country"`
	Orders       int64  `json:"orders"`
	RevenueCents int64  `json:"revenueCents"`
}

func toCountryStatResponse(c *domain.CountryStat) countryStatResponse {
	return countryStatResponse(*c)
}

type accessResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	BookID     string     `json:"bookId"`
	OrderID    *string    `json:"orderId,omitempty"`
	AccessCode string     `json:"accessCode"`
	GrantedAt  time.Time  `json:"grantedAt"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
}

func toAccessResponse(a *domain.LibraryAccess) accessResponse {
	return accessResponse{
		ID:         a.ID.String(),
		Email:      a.Email,
		BookID:     a.BookID,
		OrderID:    uuidPtrString(a.OrderID),
		AccessCode: a.AccessCode,
		GrantedAt:  a.GrantedAt,
		RevokedAt:  a.RevokedAt,
	}
}

type bookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	GrantedAt time.Time `json:"grantedAt"`
}

func toBookResponse(b *library.Book) bookResponse {
	return bookResponse(*b)
}

type positionResponse struct {
	BookID     string    `json:"bookId"`
	Email      string    `json:"email,omitempty"`
	CFI        string    `json:"cfi"`
	Percentage float64   `json:"percentage"`
	Chapter    *string   `json:"chapter,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toPositionResponse(p *domain.ReadingPosition) positionResponse {
	return positionResponse{
		BookID:     p.BookID,
		CFI:        p.CFI,
		Percentage: p.Percentage,
		Chapter:    p.Chapter,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toActiveReaderResponse(p *domain.ReadingPosition) positionResponse {
	resp := toPositionResponse(p)
	resp.Email = p.Email
	return resp
}

// ---------------------------------------------------------------------------
// Admins and audit
// ---------------------------------------------------------------------------

type adminResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Scopes    []string  `json:"scopes"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAdminResponse(a *domain.AdminUser) adminResponse {
	scopes := make([]string, 0, len(a.Scopes))
	for _, s := range a.Scopes {
		scopes = append(scopes, s.String())
	}
	return adminResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role.String(),
		Scopes:    scopes,
		CreatedAt: a.CreatedAt,
	}
}

type auditResponse struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"adminId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId,omitempty"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:         a.ID.String(),
		AdminID:    a.AdminID.String(),
		EntityType: a.EntityType,
		EntityID:   uuidPtrString(a.EntityID),
		Action:     string(a.Action),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Moderated content
// ---------------------------------------------------------------------------

type reviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	BookID    *string   `json:"bookId,omitempty"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title,omitempty"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Title:     r.Title,
		Body:      r.Body,
		Status:    string(r.Status),
		Featured:  r.Featured,
		CreatedAt: r.CreatedAt,
	}
}

// toPublicReviewResponse drops the reviewer's email.
func toPublicReviewResponse(r *domain.Review) reviewResponse {
	resp := toReviewResponse(r)
	resp.Email = nil
	return resp
}

type feedbackResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Email      *string   `json:"email,omitempty"`
	Page       *string   `json:"page,omitempty"`
	Status     string    `json:"status"`
	AdminNotes *string   `json:"adminNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:         f.ID.String(),
		Type:       string(f.Type),
		Message:    f.Message,
		Email:      f.Email,
		Page:       f.Page,
		Status:     string(f.Status),
		AdminNotes: f.AdminNotes,
		CreatedAt:  f.CreatedAt,
	}
}

type ticketReplyResponse struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"adminId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTicketReplyResponse(r *domain.TicketReply) ticketReplyResponse {
	return ticketReplyResponse{
		ID:        r.ID.String(),
		AdminID:   r.AdminID.String(),
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
}

type ticketResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Subject   string                `json:"subject"`
	Message   string                `json:"message"`
	Status    string                `json:"status"`
	Priority  string                `json:"priority"`
	OrderID   *string               `json:"orderId,omitempty"`
	Replies   []ticketReplyResponse `json:"replies"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func toTicketResponse(t *domain.SupportTicket) ticketResponse {
	return ticketResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Email:     t.Email,
		Subject:   t.Subject,
		Message:   t.Message,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		OrderID:   uuidPtrString(t.OrderID),
		Replies:   mapSlice(t.Replies, toTicketReplyResponse),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type subscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	Source    *string   `json:"source,omitempty"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSubscriberResponse(s *domain.Subscriber) subscriberResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return subscriberResponse{
		ID:        s.ID.String(),
		Email:     s.Email,
		Name:      s.Name,
		Source:    s.Source,
		Tags:      tags,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

type submissionResponse struct {
	ID          string    `json:"id"`
	AuthorName  string    `json:"authorName"`
	Email       string    `json:"email"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	WordCount   int       `json:"wordCount"`
	Synopsis    string    `json:"synopsis"`
	SampleURL   *string   `json:"sampleUrl,omitempty"`
	Status      string    `json:"status"`
	EditorNotes *string   `json:"editorNotes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:          s.ID.String(),
		AuthorName:  s.AuthorName,
		Email:       s.Email,
		Title:       s.Title,
		Genre:       s.Genre,
		WordCount:   s.WordCount,
		Synopsis:    s.Synopsis,
		SampleURL:   s.SampleURL,
		Status:      string(s.Status),
		EditorNotes: s.EditorNotes,
		CreatedAt:   s.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Narration and gatherings
// ---------------------------------------------------------------------------

type reportResponse struct {
	ID        string    `json:"id"`
	SegmentID string    `json:"segmentId"`
	Version   int       `json:"version"`
	IssueType string    `json:"issueType"`
	Comment   *string   `json:"comment,omitempty"`
	SessionID string    `json:"sessionId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReportResponse(r *domain.NarrationReport) reportResponse {
	return reportResponse{
		ID:        r.ID.String(),
		SegmentID: r.SegmentID.String(),
		Version:   r.Version,
		IssueType: string(r.IssueType),
		Comment:   r.Comment,
		SessionID: r.SessionID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

type gatheringResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	StartsAt  time.Time `json:"startsAt"`
	Capacity  int       `json:"capacity"`
	SeatsLeft *int      `json:"seatsLeft,omitempty"`
}

func toGatheringResponse(l *gathering.Listing) gatheringResponse {
	return gatheringResponse(*l)
}

type rsvpResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Guests    int       `json:"guests"`
	CreatedAt time.Time `json:"createdAt"`
}

func toRSVPResponse(r *domain.RSVP) rsvpResponse {
	return rsvpResponse(*r)
}
