package content

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Repository mocks
// ---------------------------------------------------------------------------

type mockReviewRepo struct {
	createFunc  func(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	listFunc    func(ctx context.Context, f domain.ListFilter) ([]domain.Review, int, error)
	updateFunc  func(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
	lastFilter  domain.ListFilter
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, rv)
	}
	return rv, nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockReviewRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Review, int, error) {
	m.lastFilter = f
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return []domain.Review{}, 0, nil
}

func (m *mockReviewRepo) Update(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, rv)
	}
	return rv, nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockFeedbackRepo struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	lastFilter  domain.ListFilter
	updated     *domain.Feedback
}

func (m *mockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	return fb, nil
}

func (m *mockFeedbackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockFeedbackRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Feedback, int, error) {
	m.lastFilter = f
	return []domain.Feedback{}, 0, nil
}

func (m *mockFeedbackRepo) Update(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	m.updated = fb
	return fb, nil
}

func (m *mockFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type mockTicketRepo struct {
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error)
	lastFilter   domain.ListFilter
	created      *domain.SupportTicket
	updated      *domain.SupportTicket
	replies      []domain.TicketReply
	addReplyFunc func(ctx context.Context, reply *domain.TicketReply) (*domain.TicketReply, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	m.created = t
	return t, nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockTicketRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.SupportTicket, int, error) {
	m.lastFilter = f
	return []domain.SupportTicket{}, 0, nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	m.updated = t
	return t, nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockTicketRepo) AddReply(ctx context.Context, reply *domain.TicketReply) (*domain.TicketReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, reply)
	}
	m.replies = append(m.replies, *reply)
	return reply, nil
}

type mockSubscriberRepo struct {
	upsertFunc   func(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, bool, error)
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
	unsubscribed []string
	updated      *domain.Subscriber
}

func (m *mockSubscriberRepo) Upsert(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, s)
	}
	return s, true, nil
}

func (m *mockSubscriberRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSubscriberRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Subscriber, int, error) {
	return []domain.Subscriber{}, 0, nil
}

func (m *mockSubscriberRepo) Update(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	m.updated = s
	return s, nil
}

func (m *mockSubscriberRepo) Unsubscribe(ctx context.Context, email string) error {
	m.unsubscribed = append(m.unsubscribed, email)
	return nil
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type mockSubmissionRepo struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	created     *domain.Submission
	updated     *domain.Submission
}

func (m *mockSubmissionRepo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	m.created = s
	return s, nil
}

func (m *mockSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSubmissionRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int, error) {
	return []domain.Submission{}, 0, nil
}

func (m *mockSubmissionRepo) Update(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	m.updated = s
	return s, nil
}

func (m *mockSubmissionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// ---------------------------------------------------------------------------
// Collaborator mocks
// ---------------------------------------------------------------------------

type mockNotifier struct {
	mu         sync.Mutex
	deliverErr error
	delivered  []email.Message
	notified   []email.Message
}

func (m *mockNotifier) Deliver(ctx context.Context, msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, msg)
	return m.deliverErr
}

func (m *mockNotifier) Notify(ctx context.Context, msg email.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified = append(m.notified, msg)
}

type auditCall struct {
	entityType string
	entityID   uuid.UUID
	action     domain.AuditAction
	changes    map[string]any
}

type mockAuditor struct {
	err   error
	calls []auditCall
}

func (m *mockAuditor) Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	m.calls = append(m.calls, auditCall{entityType, entityID, action, changes})
	return m.err
}

type mockTx struct{}

func (mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type testDeps struct {
	reviews     *mockReviewRepo
	feedback    *mockFeedbackRepo
	tickets     *mockTicketRepo
	subscribers *mockSubscriberRepo
	submissions *mockSubmissionRepo
	notifier    *mockNotifier
	audit       *mockAuditor
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()

	tmpl, err := email.NewTemplates("https://thronelight.test")
	if err != nil {
		t.Fatalf("NewTemplates: %v", err)
	}
	d := &testDeps{
		reviews:     &mockReviewRepo{},
		feedback:    &mockFeedbackRepo{},
		tickets:     &mockTicketRepo{},
		subscribers: &mockSubscriberRepo{},
		submissions: &mockSubmissionRepo{},
		notifier:    &mockNotifier{},
		audit:       &mockAuditor{},
	}
	svc := NewService(testLogger(), Repos{
		Reviews:     d.reviews,
		Feedback:    d.feedback,
		Tickets:     d.tickets,
		Subscribers: d.subscribers,
		Submissions: d.submissions,
	}, d.notifier, tmpl, d.audit, mockTx{}, "office@thronelight.test")
	return svc, d
}

func adminCtx() context.Context {
	return ctxutil.WithPrincipal(context.Background(), domain.Principal{
		SessionID: uuid.New(), Role: domain.RoleAdmin, SubjectID: uuid.New(),
	})
}

func ptr[T any](v T) *T { return &v }
