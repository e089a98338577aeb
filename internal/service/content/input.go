package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ListInput holds back-office list filters as they arrive from the query
// string. Which of Type and Priority apply depends on the listing.
type ListInput struct {
	Status   string
	Type     string
	Priority string
	Search   string
	Limit    int
	Offset   int
}

func (i ListInput) filter() (domain.ListFilter, []domain.FieldError) {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	return domain.ListFilter{
		Status:   optional(i.Status),
		Type:     optional(i.Type),
		Priority: optional(i.Priority),
		Search:   optional(i.Search),
		Limit:    i.Limit,
		Offset:   i.Offset,
	}, errs
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// checkEnum appends a field error when value is set and not valid.
func checkEnum(errs []domain.FieldError, field string, value *string, valid func(string) bool) []domain.FieldError {
	if value != nil && !valid(*value) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid value"})
	}
	return errs
}

func required(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) > maxLen:
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func optionalEmail(errs []domain.FieldError, field string, value *string) []domain.FieldError {
	if value != nil && strings.TrimSpace(*value) != "" && !domain.ValidEmail(domain.NormalizeEmail(*value)) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid format"})
	}
	return errs
}

func requiredEmail(errs []domain.FieldError, field, value string) []domain.FieldError {
	if !domain.ValidEmail(domain.NormalizeEmail(value)) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid format"})
	}
	return errs
}

func validationError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// CreateReviewInput is a public review.
type CreateReviewInput struct {
	Name   string
	Email  *string
	BookID *string
	Rating int
	Title  *string
	Body   string
}

func (i CreateReviewInput) Validate() error {
	var errs []domain.FieldError
	errs = required(errs, "name", i.Name, MaxNameLength)
	errs = required(errs, "body", i.Body, MaxMessageLength)
	errs = optionalEmail(errs, "email", i.Email)
	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Title != nil && len(*i.Title) > MaxSubjectLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxSubjectLength)})
	}
	return validationError(errs)
}

// UpdateReviewInput moderates a review.
type UpdateReviewInput struct {
	Status   *domain.ReviewStatus
	Featured *bool
}

func (i UpdateReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.Status == nil && i.Featured == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	return validationError(errs)
}

// ---------------------------------------------------------------------------
// Feedback
// ---------------------------------------------------------------------------

// CreateFeedbackInput is a public feedback form.
type CreateFeedbackInput struct {
	Type    domain.FeedbackType
	Message string
	Email   *string
	Page    *string
}

func (i CreateFeedbackInput) Validate() error {
	var errs []domain.FieldError
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	errs = required(errs, "message", i.Message, MaxMessageLength)
	errs = optionalEmail(errs, "email", i.Email)
	if i.Page != nil && len(*i.Page) > 2048 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "too long"})
	}
	return validationError(errs)
}

// UpdateFeedbackInput triages a feedback item.
type UpdateFeedbackInput struct {
	Status     *domain.FeedbackStatus
	AdminNotes *string
}

func (i UpdateFeedbackInput) Validate() error {
	var errs []domain.FieldError
	if i.Status == nil && i.AdminNotes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.AdminNotes != nil && len(*i.AdminNotes) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "admin_notes", Message: "too long"})
	}
	return validationError(errs)
}

// ---------------------------------------------------------------------------
// Support tickets
// ---------------------------------------------------------------------------

// CreateTicketInput is a public support request.
type CreateTicketInput struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Priority domain.TicketPriority
	OrderID  *uuid.UUID
}

func (i CreateTicketInput) Validate() error {
	var errs []domain.FieldError
	errs = required(errs, "name", i.Name, MaxNameLength)
	errs = requiredEmail(errs, "email", i.Email)
	errs = required(errs, "subject", i.Subject, MaxSubjectLength)
	errs = required(errs, "message", i.Message, MaxMessageLength)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	return validationError(errs)
}

// UpdateTicketInput changes a ticket's status or priority.
type UpdateTicketInput struct {
	Status   *domain.TicketStatus
	Priority *domain.TicketPriority
}

func (i UpdateTicketInput) Validate() error {
	var errs []domain.FieldError
	if i.Status == nil && i.Priority == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	return validationError(errs)
}

// ---------------------------------------------------------------------------
// Subscribers
// ---------------------------------------------------------------------------

// SubscribeInput is a newsletter signup.
type SubscribeInput struct {
	Email  string
	Name   *string
	Source *string
	Tags   []string
}

func (i SubscribeInput) Validate() error {
	var errs []domain.FieldError
	errs = requiredEmail(errs, "email", i.Email)
	if i.Name != nil && len(*i.Name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = append(errs, validateTags(i.Tags)...)
	return validationError(errs)
}

// UpdateSubscriberInput changes a subscriber's status or tags.
type UpdateSubscriberInput struct {
	Status *domain.SubscriberStatus
	Tags   *[]string
}

func (i UpdateSubscriberInput) Validate() error {
	var errs []domain.FieldError
	if i.Status == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}
	return validationError(errs)
}

func validateTags(tags []string) []domain.FieldError {
	if len(tags) > MaxTagsPerContact {
		return []domain.FieldError{{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTagsPerContact)}}
	}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t == "" || len(t) > 50 {
			return []domain.FieldError{{Field: "tags", Message: "tags must be 1-50 characters"}}
		}
	}
	return nil
}

// normalizeTags trims, lower-cases and dedupes tags.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Submissions
// ---------------------------------------------------------------------------

// CreateSubmissionInput is a manuscript submission.
type CreateSubmissionInput struct {
	AuthorName string
	Email      string
	Title      string
	Genre      string
	WordCount  int
	Synopsis   string
	SampleURL  *string
}

func (i CreateSubmissionInput) Validate() error {
	var errs []domain.FieldError
	errs = required(errs, "author_name", i.AuthorName, MaxNameLength)
	errs = requiredEmail(errs, "email", i.Email)
	errs = required(errs, "title", i.Title, MaxSubjectLength)
	errs = required(errs, "genre", i.Genre, MaxNameLength)
	errs = required(errs, "synopsis", i.Synopsis, MaxSynopsisLength)
	if i.WordCount <= 0 || i.WordCount > 1_000_000 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be between 1 and 1000000"})
	}
	if i.SampleURL != nil && *i.SampleURL != "" {
		u, err := url.Parse(*i.SampleURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "sample_url", Message: "must be an http(s) URL"})
		}
	}
	return validationError(errs)
}

// UpdateSubmissionInput records an editorial decision.
type UpdateSubmissionInput struct {
	Status      *domain.SubmissionStatus
	EditorNotes *string
}

func (i UpdateSubmissionInput) Validate() error {
	var errs []domain.FieldError
	if i.Status == nil && i.EditorNotes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.EditorNotes != nil && len(*i.EditorNotes) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "editor_notes", Message: "too long"})
	}
	return validationError(errs)
}
