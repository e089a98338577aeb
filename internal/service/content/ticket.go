package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Support Ticket Operations
// ---------------------------------------------------------------------------

// CreateTicket opens a support ticket and tells the back office without
// waiting for the mail provider.
func (s *Service) CreateTicket(ctx context.Context, input CreateTicketInput) (*domain.SupportTicket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	t := &domain.SupportTicket{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(input.Name),
		Email:    domain.NormalizeEmail(input.Email),
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
		Status:   domain.TicketOpen,
		Priority: priority,
		OrderID:  input.OrderID,
	}
	created, err := s.tickets.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("content.CreateTicket: %w", err)
	}

	s.log.InfoContext(ctx, "ticket opened", slog.String("ticket_id", created.ID.String()), slog.String("priority", created.Priority.String()))

	if s.adminNotify != "" {
		msg, err := s.templates.AdminNewTicket(s.adminNotify, email.AdminNewTicket{
			Name:     created.Name,
			Email:    created.Email,
			Subject:  created.Subject,
			Message:  created.Message,
			Priority: created.Priority.String(),
		})
		if err != nil {
			s.log.ErrorContext(ctx, "render admin ticket notice", slog.String("error", err.Error()))
		} else {
			s.notifier.Notify(ctx, msg)
		}
	}
	return created, nil
}

// GetTicket returns a ticket with its replies.
func (s *Service) GetTicket(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("content.GetTicket: %w", err)
	}
	return t, nil
}

// ListTickets lists tickets filtered by status, priority and search text,
// most urgent first.
func (s *Service) ListTickets(ctx context.Context, input ListInput) (*Page[domain.SupportTicket], error) {
	f, errs := input.filter()
	errs = checkEnum(errs, "status", f.Status, func(v string) bool { return domain.TicketStatus(v).IsValid() })
	errs = checkEnum(errs, "priority", f.Priority, func(v string) bool { return domain.TicketPriority(v).IsValid() })
	if err := validationError(errs); err != nil {
		return nil, err
	}
	items, total, err := s.tickets.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("content.ListTickets: %w", err)
	}
	return &Page[domain.SupportTicket]{Items: items, Total: total}, nil
}

// UpdateTicket changes a ticket's status or priority.
func (s *Service) UpdateTicket(ctx context.Context, id uuid.UUID, input UpdateTicketInput) (*domain.SupportTicket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.SupportTicket
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		t, err := s.tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Status != nil && *input.Status != t.Status {
			changes["status"] = map[string]any{"old": t.Status, "new": *input.Status}
			t.Status = *input.Status
		}
		if input.Priority != nil && *input.Priority != t.Priority {
			changes["priority"] = map[string]any{"old": t.Priority, "new": *input.Priority}
			t.Priority = *input.Priority
		}

		updated, err = s.tickets.Update(ctx, t)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, entityTicket, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("content.UpdateTicket: %w", err)
	}
	return updated, nil
}

// ReplyResult is returned by ReplyToTicket.
type ReplyResult struct {
	Reply     *domain.TicketReply
	EmailSent bool
}

// ReplyToTicket stores an admin reply and emails it to the requester. An
// open ticket moves to in_progress.
func (s *Service) ReplyToTicket(ctx context.Context, id uuid.UUID, body string) (*ReplyResult, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	if err := validationError(required(nil, "body", body, MaxMessageLength)); err != nil {
		return nil, err
	}

	var (
		ticket *domain.SupportTicket
		reply  *domain.TicketReply
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		ticket, err = s.tickets.GetByID(ctx, id)
		if err != nil {
			return err
		}

		reply, err = s.tickets.AddReply(ctx, &domain.TicketReply{
			ID:       uuid.New(),
			TicketID: id,
			AdminID:  p.SubjectID,
			Body:     strings.TrimSpace(body),
		})
		if err != nil {
			return err
		}

		if ticket.Status == domain.TicketOpen {
			ticket.Status = domain.TicketInProgress
			if _, err := s.tickets.Update(ctx, ticket); err != nil {
				return err
			}
		}
		return s.audit.Record(ctx, entityTicket, id, domain.AuditUpdate, map[string]any{"reply_id": reply.ID})
	})
	if err != nil {
		return nil, fmt.Errorf("content.ReplyToTicket: %w", err)
	}

	res := &ReplyResult{Reply: reply}
	msg, err := s.templates.TicketReply(email.TicketReply{
		Email:   ticket.Email,
		Name:    ticket.Name,
		Subject: ticket.Subject,
		Reply:   reply.Body,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "render ticket reply", slog.String("error", err.Error()))
		return res, nil
	}
	if err := s.notifier.Deliver(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "ticket reply email failed", slog.String("ticket_id", id.String()), slog.String("error", err.Error()))
		return res, nil
	}
	res.EmailSent = true
	return res, nil
}

// DeleteTicket removes a ticket and its replies.
func (s *Service) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	return s.deleteAudited(ctx, entityTicket, id, s.tickets.Delete)
}
