// Package gathering serves public events and their RSVPs.
package gathering

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/thronelight/platform/internal/domain"
)

const (
	maxGuests   = 10
	maxTitleLen = 200
)

type gatheringStore interface {
	List(ctx context.Context) ([]domain.Gathering, error)
	Get(ctx context.Context, id string) (*domain.Gathering, error)
	Save(ctx context.Context, g domain.Gathering) (*domain.Gathering, error)
	AddRSVP(ctx context.Context, gatheringID string, r domain.RSVP) (*domain.Gathering, error)
}

// Service implements gathering listings and RSVPs.
type Service struct {
	log   *slog.Logger
	store gatheringStore
	now   func() time.Time
}

// NewService creates a new gathering service.
func NewService(logger *slog.Logger, store gatheringStore) *Service {
	return &Service{
		log:   logger.With("service", "gathering"),
		store: store,
		now:   time.Now,
	}
}

// Listing is the public view of a gathering. Attendees are never exposed.
type Listing struct {
	ID        string
	Title     string
	Location  string
	StartsAt  time.Time
	Capacity  int
	SeatsLeft *int
}

func listing(g *domain.Gathering) Listing {
	l := Listing{ID: g.ID, Title: g.Title, Location: g.Location, StartsAt: g.StartsAt, Capacity: g.Capacity}
	if g.Capacity > 0 {
		left := max(g.Capacity-g.Seats(), 0)
		l.SeatsLeft = &left
	}
	return l
}

// List returns gatherings ordered by start time. Past gatherings are
// omitted unless includePast is set.
func (s *Service) List(ctx context.Context, includePast bool) ([]Listing, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("gathering.List: %w", err)
	}
	now := s.now()
	out := make([]Listing, 0, len(all))
	for i := range all {
		if !includePast && all[i].StartsAt.Before(now) {
			continue
		}
		out = append(out, listing(&all[i]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

// Get returns one gathering's public view.
func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("gathering.Get: %w", err)
	}
	l := listing(g)
	return &l, nil
}

// Attendees returns a gathering with its RSVP list, for operators.
func (s *Service) Attendees(ctx context.Context, id string) (*domain.Gathering, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("gathering.Attendees: %w", err)
	}
	return g, nil
}

// RSVPInput is one attendee registration.
type RSVPInput struct {
	Name   string
	Email  string
	Guests int
}

func (i RSVPInput) Validate() error {
	var errs []domain.FieldError
	if n := strings.TrimSpace(i.Name); n == "" || len(n) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !domain.ValidEmail(domain.NormalizeEmail(i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Guests < 0 || i.Guests > maxGuests {
		errs = append(errs, domain.FieldError{Field: "guests", Message: fmt.Sprintf("must be between 0 and %d", maxGuests)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RSVP registers an attendee. A repeated email is ErrAlreadyExists, a full
// or past gathering is ErrConflict.
func (s *Service) RSVP(ctx context.Context, id string, input RSVPInput) (*Listing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("gathering.RSVP: %w", err)
	}
	if g.StartsAt.Before(s.now()) {
		return nil, fmt.Errorf("gathering.RSVP: %s already started: %w", id, domain.ErrConflict)
	}

	updated, err := s.store.AddRSVP(ctx, id, domain.RSVP{
		Name:      strings.TrimSpace(input.Name),
		Email:     domain.NormalizeEmail(input.Email),
		Guests:    input.Guests,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("gathering.RSVP: %w", err)
	}

	s.log.InfoContext(ctx, "rsvp recorded", slog.String("gathering_id", id), slog.Int("seats", updated.Seats()))
	l := listing(updated)
	return &l, nil
}

// CreateInput describes a new gathering.
type CreateInput struct {
	Title    string
	Location string
	StartsAt time.Time
	Capacity int
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if t := strings.TrimSpace(i.Title); t == "" || len(t) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Location) == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	if i.StartsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "starts_at", Message: "required"})
	}
	if i.Capacity < 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create adds a gathering. Its id is the slugged title plus start date.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Gathering, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := domain.Slugify(input.Title) + "-" + input.StartsAt.UTC().Format("2006-01-02")
	if _, err := s.store.Get(ctx, id); err == nil {
		return nil, fmt.Errorf("gathering.Create: %s: %w", id, domain.ErrAlreadyExists)
	}

	g, err := s.store.Save(ctx, domain.Gathering{
		ID:       id,
		Title:    strings.TrimSpace(input.Title),
		Location: strings.TrimSpace(input.Location),
		StartsAt: input.StartsAt.UTC(),
		Capacity: input.Capacity,
	})
	if err != nil {
		return nil, fmt.Errorf("gathering.Create: %w", err)
	}
	s.log.InfoContext(ctx, "gathering created", slog.String("gathering_id", g.ID))
	return g, nil
}
