package domain

// Role identifies what kind of principal a session belongs to.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePartner    Role = "partner"
	RoleTeamMember Role = "team_member"
	RoleReader     Role = "reader"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePartner, RoleTeamMember, RoleReader:
		return true
	}
	return false
}

// TeamRole scopes what a partner's team member may see in the portal.
type TeamRole string

const (
	TeamRoleViewAll          TeamRole = "view_all"
	TeamRoleViewNoFinancials TeamRole = "view_no_financials"
	TeamRoleViewClicksOnly   TeamRole = "view_clicks_only"
)

func (r TeamRole) String() string { return string(r) }

func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleViewAll, TeamRoleViewNoFinancials, TeamRoleViewClicksOnly:
		return true
	}
	return false
}

// AdminRole distinguishes full administrators from scoped sub-admins.
type AdminRole string

const (
	AdminRoleSuper AdminRole = "super_admin"
	AdminRoleSub   AdminRole = "sub_admin"
)

func (r AdminRole) String() string { return string(r) }

func (r AdminRole) IsValid() bool {
	return r == AdminRoleSuper || r == AdminRoleSub
}

// AdminScope names a back-office area a sub-admin can be granted.
type AdminScope string

const (
	ScopePartners    AdminScope = "partners"
	ScopeAccessCodes AdminScope = "access_codes"
	ScopeReviews     AdminScope = "reviews"
	ScopeFeedback    AdminScope = "feedback"
	ScopeTickets     AdminScope = "tickets"
	ScopeSubscribers AdminScope = "subscribers"
	ScopeSubmissions AdminScope = "submissions"
	ScopeOrders      AdminScope = "orders"
	ScopeAnalytics   AdminScope = "analytics"
	ScopeReaders     AdminScope = "readers"
	ScopeNarration   AdminScope = "narration"
)

// AllAdminScopes lists every scope in display order.
var AllAdminScopes = []AdminScope{
	ScopePartners, ScopeAccessCodes, ScopeReviews, ScopeFeedback, ScopeTickets,
	ScopeSubscribers, ScopeSubmissions, ScopeOrders, ScopeAnalytics, ScopeReaders,
	ScopeNarration,
}

func (s AdminScope) String() string { return string(s) }

func (s AdminScope) IsValid() bool {
	for _, v := range AllAdminScopes {
		if v == s {
			return true
		}
	}
	return false
}

// OrderStatus is the payment lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRefunded  OrderStatus = "refunded"
	OrderStatusDisputed  OrderStatus = "disputed"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusRefunded, OrderStatusDisputed:
		return true
	}
	return false
}

// CommissionStatus tracks whether a partner commission can be paid out.
type CommissionStatus string

const (
	CommissionNone    CommissionStatus = "none"
	CommissionPending CommissionStatus = "pending"
	CommissionPayable CommissionStatus = "payable"
	CommissionVoided  CommissionStatus = "voided"
	CommissionHeld    CommissionStatus = "held"
)

func (s CommissionStatus) String() string { return string(s) }

func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionNone, CommissionPending, CommissionPayable, CommissionVoided, CommissionHeld:
		return true
	}
	return false
}

// ReviewStatus is the moderation state of a public review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// FeedbackType classifies reader feedback.
type FeedbackType string

const (
	FeedbackBug        FeedbackType = "bug"
	FeedbackSuggestion FeedbackType = "suggestion"
	FeedbackPraise     FeedbackType = "praise"
	FeedbackOther      FeedbackType = "other"
)

func (t FeedbackType) String() string { return string(t) }

func (t FeedbackType) IsValid() bool {
	switch t {
	case FeedbackBug, FeedbackSuggestion, FeedbackPraise, FeedbackOther:
		return true
	}
	return false
}

// FeedbackStatus is the triage state of a feedback item.
type FeedbackStatus string

const (
	FeedbackNew      FeedbackStatus = "new"
	FeedbackTriaged  FeedbackStatus = "triaged"
	FeedbackResolved FeedbackStatus = "resolved"
	FeedbackArchived FeedbackStatus = "archived"
)

func (s FeedbackStatus) String() string { return string(s) }

func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackNew, FeedbackTriaged, FeedbackResolved, FeedbackArchived:
		return true
	}
	return false
}

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// TicketPriority orders the support queue.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityNormal TicketPriority = "normal"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

func (p TicketPriority) String() string { return string(p) }

func (p TicketPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// SubscriberStatus is the newsletter membership state.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberBounced      SubscriberStatus = "bounced"
)

func (s SubscriberStatus) String() string { return string(s) }

func (s SubscriberStatus) IsValid() bool {
	switch s {
	case SubscriberActive, SubscriberUnsubscribed, SubscriberBounced:
		return true
	}
	return false
}

// SubmissionStatus is the editorial state of a manuscript submission.
type SubmissionStatus string

const (
	SubmissionReceived  SubmissionStatus = "received"
	SubmissionReviewing SubmissionStatus = "reviewing"
	SubmissionAccepted  SubmissionStatus = "accepted"
	SubmissionRejected  SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionReceived, SubmissionReviewing, SubmissionAccepted, SubmissionRejected:
		return true
	}
	return false
}

// IssueType is what a listener reports about a narrated segment.
type IssueType string

const (
	IssueMispronunciation IssueType = "mispronunciation"
	IssueWrongText        IssueType = "wrong_text"
	IssueAudioQuality     IssueType = "audio_quality"
	IssueOther            IssueType = "other"
)

func (t IssueType) String() string { return string(t) }

func (t IssueType) IsValid() bool {
	switch t {
	case IssueMispronunciation, IssueWrongText, IssueAudioQuality, IssueOther:
		return true
	}
	return false
}

// ReportStatus is the review state of a narration issue report.
type ReportStatus string

const (
	ReportRegenerated ReportStatus = "regenerated"
	ReportQueued      ReportStatus = "queued"
	ReportResolved    ReportStatus = "resolved"
	ReportDismissed   ReportStatus = "dismissed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportRegenerated, ReportQueued, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// AuditAction is the kind of admin mutation recorded in the audit log.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }
