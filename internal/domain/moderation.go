package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a reader review shown on the reviews wall once approved.
type Review struct {
	ID        uuid.UUID
	Name      string
	Email     *string
	BookID    *string
	Rating    int
	Title     *string
	Body      string
	Status    ReviewStatus
	Featured  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Feedback is a reader-submitted comment triaged by admins.
type Feedback struct {
	ID         uuid.UUID
	Type       FeedbackType
	Message    string
	Email      *string
	Page       *string
	Status     FeedbackStatus
	AdminNotes *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    TicketStatus
	Priority  TicketPriority
	OrderID   *uuid.UUID
	Replies   []TicketReply
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketReply is an admin response on a ticket.
type TicketReply struct {
	ID        uuid.UUID
	TicketID  uuid.UUID
	AdminID   uuid.UUID
	Body      string
	CreatedAt time.Time
}

// Subscriber is a newsletter/CRM contact.
type Subscriber struct {
	ID        uuid.UUID
	Email     string
	Name      *string
	Source    *string
	Tags      []string
	Status    SubscriberStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission is a manuscript submitted to the publisher.
type Submission struct {
	ID          uuid.UUID
	AuthorName  string
	Email       string
	Title       string
	Genre       string
	WordCount   int
	Synopsis    string
	SampleURL   *string
	Status      SubmissionStatus
	EditorNotes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
