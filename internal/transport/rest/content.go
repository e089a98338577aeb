package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/content"
)

type contentService interface {
	CreateReview(ctx context.Context, input content.CreateReviewInput) (*domain.Review, error)
	PublicReviews(ctx context.Context, limit, offset int) (*content.Page[domain.Review], error)
	ListReviews(ctx context.Context, input content.ListInput) (*content.Page[domain.Review], error)
	UpdateReview(ctx context.Context, id uuid.UUID, input content.UpdateReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error

	CreateFeedback(ctx context.Context, input content.CreateFeedbackInput) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, input content.ListInput) (*content.Page[domain.Feedback], error)
	UpdateFeedback(ctx context.Context, id uuid.UUID, input content.UpdateFeedbackInput) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, id uuid.UUID) error

	CreateTicket(ctx context.Context, input content.CreateTicketInput) (*domain.SupportTicket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error)
	ListTickets(ctx context.Context, input content.ListInput) (*content.Page[domain.SupportTicket], error)
	UpdateTicket(ctx context.Context, id uuid.UUID, input content.UpdateTicketInput) (*domain.SupportTicket, error)
	ReplyToTicket(ctx context.Context, id uuid.UUID, body string) (*content.ReplyResult, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) error

	Subscribe(ctx context.Context, input content.SubscribeInput) (*content.SubscribeResult, error)
	Unsubscribe(ctx context.Context, addr string) error
	ListSubscribers(ctx context.Context, input content.ListInput) (*content.Page[domain.Subscriber], error)
	UpdateSubscriber(ctx context.Context, id uuid.UUID, input content.UpdateSubscriberInput) (*domain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id uuid.UUID) error

	CreateSubmission(ctx context.Context, input content.CreateSubmissionInput) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, input content.ListInput) (*content.Page[domain.Submission], error)
	UpdateSubmission(ctx context.Context, id uuid.UUID, input content.UpdateSubmissionInput) (*domain.Submission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}

// ContentHandler serves the public forms and their admin moderation.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

type createReviewRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	BookID *string `json:"bookId"`
	Rating int     `json:"rating"`
	Title  *string `json:"title"`
	Body   string  `json:"body"`
}

// CreateReview handles POST /api/reviews. Reviews start pending.
func (h *ContentHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rv, err := h.svc.CreateReview(r.Context(), content.CreateReviewInput{
		Name:   req.Name,
		Email:  req.Email,
		BookID: req.BookID,
		Rating: req.Rating,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPublicReviewResponse(rv))
}

// PublicReviews handles GET /api/reviews.
func (h *ContentHandler) PublicReviews(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.PublicReviews(r.Context(), queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toPublicReviewResponse))
}

// ListReviews handles GET /api/admin/reviews.
func (h *ContentHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListReviews(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toReviewResponse))
}

type updateReviewRequest struct {
	Status   *string `json:"status"`
	Featured *bool   `json:"featured"`
}

// UpdateReview handles PATCH /api/admin/reviews/{id}.
func (h *ContentHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rv, err := h.svc.UpdateReview(r.Context(), id, content.UpdateReviewInput{
		Status:   enumPtr[domain.ReviewStatus](req.Status),
		Featured: req.Featured,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(rv))
}

// DeleteReview handles DELETE /api/admin/reviews/{id}.
func (h *ContentHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteReview)
}

// ---------------------------------------------------------------------------
// Feedback
// ---------------------------------------------------------------------------

type createFeedbackRequest struct {
	Type    string  `json:"type"`
	Message string  `json:"message"`
	Email   *string `json:"email"`
	Page    *string `json:"page"`
}

// CreateFeedback handles POST /api/feedback.
func (h *ContentHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.svc.CreateFeedback(r.Context(), content.CreateFeedbackInput{
		Type:    domain.FeedbackType(req.Type),
		Message: req.Message,
		Email:   req.Email,
		Page:    req.Page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": f.ID.String()})
}

// ListFeedback handles GET /api/admin/feedback.
func (h *ContentHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListFeedback(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toFeedbackResponse))
}

type updateFeedbackRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

// UpdateFeedback handles PATCH /api/admin/feedback/{id}.
func (h *ContentHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.svc.UpdateFeedback(r.Context(), id, content.UpdateFeedbackInput{
		Status:     enumPtr[domain.FeedbackStatus](req.Status),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(f))
}

// DeleteFeedback handles DELETE /api/admin/feedback/{id}.
func (h *ContentHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteFeedback)
}

// ---------------------------------------------------------------------------
// Support tickets
// ---------------------------------------------------------------------------

type createTicketRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Subject  string  `json:"subject"`
	Message  string  `json:"message"`
	Priority string  `json:"priority"`
	OrderID  *string `json:"orderId"`
}

// CreateTicket handles POST /api/support/tickets.
func (h *ContentHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input := content.CreateTicketInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: domain.TicketPriority(req.Priority),
	}
	if req.OrderID != nil && *req.OrderID != "" {
		orderID, err := uuid.Parse(*req.OrderID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("orderId", "invalid id"))
			return
		}
		input.OrderID = &orderID
	}
	t, err := h.svc.CreateTicket(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": t.ID.String()})
}

// GetTicket handles GET /api/admin/tickets/{id}.
func (h *ContentHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

// ListTickets handles GET /api/admin/tickets.
func (h *ContentHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListTickets(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toTicketResponse))
}

type updateTicketRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// UpdateTicket handles PATCH /api/admin/tickets/{id}.
func (h *ContentHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateTicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t, err := h.svc.UpdateTicket(r.Context(), id, content.UpdateTicketInput{
		Status:   enumPtr[domain.TicketStatus](req.Status),
		Priority: enumPtr[domain.TicketPriority](req.Priority),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

type replyRequest struct {
	Body string `json:"body"`
}

type replyResponse struct {
	Reply     ticketReplyResponse `json:"reply"`
	EmailSent bool                `json:"emailSent"`
}

// ReplyToTicket handles POST /api/admin/tickets/{id}/reply.
func (h *ContentHandler) ReplyToTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req replyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.ReplyToTicket(r.Context(), id, req.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, replyResponse{
		Reply:     toTicketReplyResponse(res.Reply),
		EmailSent: res.EmailSent,
	})
}

// DeleteTicket handles DELETE /api/admin/tickets/{id}.
func (h *ContentHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteTicket)
}

// ---------------------------------------------------------------------------
// Subscribers
// ---------------------------------------------------------------------------

type subscribeRequest struct {
	Email  string   `json:"email"`
	Name   *string  `json:"name"`
	Source *string  `json:"source"`
	Tags   []string `json:"tags"`
}

type subscribeResponse struct {
	Subscribed bool `json:"subscribed"`
	Created    bool `json:"created"`
}

// Subscribe handles POST /api/subscribers. Repeat sign-ups answer 200.
func (h *ContentHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Subscribe(r.Context(), content.SubscribeInput{
		Email:  req.Email,
		Name:   req.Name,
		Source: req.Source,
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, subscribeResponse{Subscribed: true, Created: res.Created})
}

type unsubscribeRequest struct {
	Email string `json:"email"`
}

// Unsubscribe handles POST /api/subscribers/unsubscribe.
func (h *ContentHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.Unsubscribe(r.Context(), req.Email); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w)
}

// ListSubscribers handles GET /api/admin/subscribers.
func (h *ContentHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListSubscribers(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toSubscriberResponse))
}

type updateSubscriberRequest struct {
	Status *string   `json:"status"`
	Tags   *[]string `json:"tags"`
}

// UpdateSubscriber handles PATCH /api/admin/subscribers/{id}.
func (h *ContentHandler) UpdateSubscriber(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateSubscriberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.UpdateSubscriber(r.Context(), id, content.UpdateSubscriberInput{
		Status: enumPtr[domain.SubscriberStatus](req.Status),
		Tags:   req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubscriberResponse(s))
}

// DeleteSubscriber handles DELETE /api/admin/subscribers/{id}.
func (h *ContentHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteSubscriber)
}

// ---------------------------------------------------------------------------
// Manuscript submissions
// ---------------------------------------------------------------------------

type createSubmissionRequest struct {
	AuthorName string  `json:"authorName"`
	Email      string  `json:"email"`
	Title      string  `json:"title"`
	Genre      string  `json:"genre"`
	WordCount  int     `json:"wordCount"`
	Synopsis   string  `json:"synopsis"`
	SampleURL  *string `json:"sampleUrl"`
}

// CreateSubmission handles POST /api/submissions.
func (h *ContentHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.CreateSubmission(r.Context(), content.CreateSubmissionInput{
		AuthorName: req.AuthorName,
		Email:      req.Email,
		Title:      req.Title,
		Genre:      req.Genre,
		WordCount:  req.WordCount,
		Synopsis:   req.Synopsis,
		SampleURL:  req.SampleURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": s.ID.String()})
}

// ListSubmissions handles GET /api/admin/submissions.
func (h *ContentHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListSubmissions(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toSubmissionResponse))
}

type updateSubmissionRequest struct {
	Status      *string `json:"status"`
	EditorNotes *string `json:"editorNotes"`
}

// UpdateSubmission handles PATCH /api/admin/submissions/{id}.
func (h *ContentHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateSubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.UpdateSubmission(r.Context(), id, content.UpdateSubmissionInput{
		Status:      enumPtr[domain.SubmissionStatus](req.Status),
		EditorNotes: req.EditorNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(s))
}

// DeleteSubmission handles DELETE /api/admin/submissions/{id}.
func (h *ContentHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteSubmission)
}
