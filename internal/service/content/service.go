package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxNameLength     = 200
	MaxSubjectLength  = 300
	MaxMessageLength  = 10000
	MaxSynopsisLength = 5000
	MaxTagsPerContact = 20
)

const (
	entityReview     = "review"
	entityFeedback   = "feedback"
	entityTicket     = "support_ticket"
	entitySubscriber = "subscriber"
	entitySubmission = "submission"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Review, int, error)
	Update(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type feedbackRepo interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Feedback, int, error)
	Update(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepo interface {
	Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.SupportTicket, int, error)
	Update(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, reply *domain.TicketReply) (*domain.TicketReply, error)
}

type subscriberRepo interface {
	Upsert(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Subscriber, int, error)
	Update(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int, error)
	Update(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notifier interface {
	Deliver(ctx context.Context, msg email.Message) error
	Notify(ctx context.Context, msg email.Message)
}

type auditor interface {
	Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the public marketing forms and their back-office
// moderation: reviews, feedback, support tickets, newsletter subscribers and
// manuscript submissions.
type Service struct {
	log         *slog.Logger
	reviews     reviewRepo
	feedback    feedbackRepo
	tickets     ticketRepo
	subscribers subscriberRepo
	submissions submissionRepo
	notifier    notifier
	templates   *email.Templates
	audit       auditor
	tx          txManager
	adminNotify string
}

// Repos groups the content repositories.
type Repos struct {
	Reviews     reviewRepo
	Feedback    feedbackRepo
	Tickets     ticketRepo
	Subscribers subscriberRepo
	Submissions submissionRepo
}

// NewService creates a new Content service. adminNotify is the back-office
// address told about new support tickets; empty disables the notice.
func NewService(
	logger *slog.Logger,
	repos Repos,
	notifier notifier,
	templates *email.Templates,
	audit auditor,
	tx txManager,
	adminNotify string,
) *Service {
	return &Service{
		log:         logger.With("service", "content"),
		reviews:     repos.Reviews,
		feedback:    repos.Feedback,
		tickets:     repos.Tickets,
		subscribers: repos.Subscribers,
		submissions: repos.Submissions,
		notifier:    notifier,
		templates:   templates,
		audit:       audit,
		tx:          tx,
		adminNotify: adminNotify,
	}
}

// Page is one page of a back-office listing.
type Page[T any] struct {
	Items []T
	Total int
}
