// Package filestore keeps marketing content in a JSON file. Every
// read-modify-write cycle holds an exclusive OS file lock and replaces the
// file atomically.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/thronelight/platform/internal/domain"
)

const lockRetryDelay = 50 * time.Millisecond

// GatheringStore reads and updates the gatherings document. The mutex
// serializes callers within the process; flock only excludes other
// processes.
type GatheringStore struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
	now  func() time.Time
}

type document struct {
	Gatherings []gatheringRecord `json:"gatherings"`
}

type gatheringRecord struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Location  string       `json:"location"`
	StartsAt  time.Time    `json:"starts_at"`
	Capacity  int          `json:"capacity"`
	RSVPs     []rsvpRecord `json:"rsvps"`
	CreatedAt time.Time    `json:"created_at"`
}

type rsvpRecord struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Guests    int       `json:"guests"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGatheringStore creates a store for the JSON document at path. A
// missing file reads as empty.
func NewGatheringStore(path string) *GatheringStore {
	return &GatheringStore{
		path: path,
		lock: flock.New(path + ".lock"),
		now:  time.Now,
	}
}

// List returns every gathering ordered by start time.
func (s *GatheringStore) List(ctx context.Context) ([]domain.Gathering, error) {
	var out []domain.Gathering
	err := s.withReadLock(ctx, func(doc *document) {
		out = make([]domain.Gathering, 0, len(doc.Gatherings))
		for _, g := range doc.Gatherings {
			out = append(out, g.toDomain())
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

// Get returns one gathering.
func (s *GatheringStore) Get(ctx context.Context, id string) (*domain.Gathering, error) {
	var found *domain.Gathering
	err := s.withReadLock(ctx, func(doc *document) {
		if i := doc.index(id); i >= 0 {
			g := doc.Gatherings[i].toDomain()
			found = &g
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("gathering %s: %w", id, domain.ErrNotFound)
	}
	return found, nil
}

// Save inserts or replaces a gathering, keeping its RSVPs when replacing.
func (s *GatheringStore) Save(ctx context.Context, g domain.Gathering) (*domain.Gathering, error) {
	var saved domain.Gathering
	err := s.withWriteLock(ctx, func(doc *document) error {
		rec := fromDomain(g)
		if i := doc.index(g.ID); i >= 0 {
			rec.RSVPs = doc.Gatherings[i].RSVPs
			rec.CreatedAt = doc.Gatherings[i].CreatedAt
			doc.Gatherings[i] = rec
		} else {
			if rec.CreatedAt.IsZero() {
				rec.CreatedAt = s.now().UTC()
			}
			doc.Gatherings = append(doc.Gatherings, rec)
		}
		saved = rec.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// AddRSVP registers an attendee. A repeated email returns
// domain.ErrAlreadyExists; exceeding capacity returns domain.ErrConflict.
func (s *GatheringStore) AddRSVP(ctx context.Context, gatheringID string, r domain.RSVP) (*domain.Gathering, error) {
	var updated domain.Gathering
	err := s.withWriteLock(ctx, func(doc *document) error {
		i := doc.index(gatheringID)
		if i < 0 {
			return fmt.Errorf("gathering %s: %w", gatheringID, domain.ErrNotFound)
		}
		g := &doc.Gatherings[i]
		for _, existing := range g.RSVPs {
			if existing.Email == r.Email {
				return fmt.Errorf("rsvp %s: %w", r.Email, domain.ErrAlreadyExists)
			}
		}
		current := g.toDomain()
		if g.Capacity > 0 && current.Seats()+1+r.Guests > g.Capacity {
			return fmt.Errorf("gathering %s is full: %w", gatheringID, domain.ErrConflict)
		}

		if r.CreatedAt.IsZero() {
			r.CreatedAt = s.now().UTC()
		}
		g.RSVPs = append(g.RSVPs, rsvpRecord(r))
		updated = g.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GatheringStore) withReadLock(ctx context.Context, fn func(*document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return err
	}
	ok, err := s.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		return fmt.Errorf("filestore: acquire read lock: %w", errors.Join(err, ctx.Err()))
	}
	defer s.lock.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(doc)
	return nil
}

func (s *GatheringStore) withWriteLock(ctx context.Context, fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return err
	}
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		return fmt.Errorf("filestore: acquire lock: %w", errors.Join(err, ctx.Err()))
	}
	defer s.lock.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *GatheringStore) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("filestore: create dir: %w", err)
	}
	return nil
}

func (s *GatheringStore) read() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", s.path, err)
	}
	var doc document
	if len(raw) == 0 {
		return &doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *GatheringStore) write(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", s.path, err)
	}
	return nil
}

func (d *document) index(id string) int {
	for i := range d.Gatherings {
		if d.Gatherings[i].ID == id {
			return i
		}
	}
	return -1
}

func (g gatheringRecord) toDomain() domain.Gathering {
	out := domain.Gathering{
		ID:        g.ID,
		Title:     g.Title,
		Location:  g.Location,
		StartsAt:  g.StartsAt,
		Capacity:  g.Capacity,
		RSVPs:     make([]domain.RSVP, 0, len(g.RSVPs)),
		CreatedAt: g.CreatedAt,
	}
	for _, r := range g.RSVPs {
		out.RSVPs = append(out.RSVPs, domain.RSVP(r))
	}
	return out
}

func fromDomain(g domain.Gathering) gatheringRecord {
	rec := gatheringRecord{
		ID:        g.ID,
		Title:     g.Title,
		Location:  g.Location,
		StartsAt:  g.StartsAt,
		Capacity:  g.Capacity,
		CreatedAt: g.CreatedAt,
	}
	for _, r := range g.RSVPs {
		rec.RSVPs = append(rec.RSVPs, rsvpRecord(r))
	}
	return rec
}
