// Package player drives narrated playback of a book section: one shared
// audio element plays paragraphs in order, the view highlights and scrolls
// to the active paragraph, and the next paragraphs' audio is fetched ahead
// of time so the transition at the end of a clip needs no network round
// trip.
//
// Every exported method is safe for concurrent use. Audio and View methods
// are invoked with the player's lock held and must not call back into the
// Player.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultMaxVersion    = 3
	defaultPrefetchAhead = 2
	defaultFetchTimeout  = 30 * time.Second
)

// Error strings surfaced in State.Error.
const (
	ErrTextLoad   = "Failed to load audio"
	ErrTextPlay   = "Audio playback error"
	ErrTextReport = "Failed to report issue"
)

var (
	// ErrOutOfRange is returned for a paragraph index outside the section.
	ErrOutOfRange = errors.New("player: paragraph index out of range")
	// ErrNothingPlaying is returned by ReportIssue before any segment loaded.
	ErrNothingPlaying = errors.New("player: no segment loaded")
	// ErrSuperseded is returned when a newer request or a reset replaced the
	// one in flight. The player state is left to the newer request.
	ErrSuperseded = errors.New("player: request superseded")
)

// Segment is a resolved audio asset.
type Segment struct {
	ID      string
	URL     string
	Version int
}

// FetchRequest identifies the audio for one paragraph.
type FetchRequest struct {
	Text         string
	LanguageCode string
	VoiceID      string
	Version      int
}

// Report is a listener's complaint about the current segment.
type Report struct {
	SegmentID string
	Version   int
	IssueType string
	Comment   string
	SessionID string
}

// ReportResponse tells the player whether another version is available.
type ReportResponse struct {
	NextVersion    int
	HasNextVersion bool
}

// SegmentSource resolves and reports segments.
type SegmentSource interface {
	Fetch(ctx context.Context, req FetchRequest) (Segment, error)
	Report(ctx context.Context, r Report) (ReportResponse, error)
}

// Audio is the single shared audio element.
type Audio interface {
	SetSource(url string)
	Play() error
	Pause()
}

// View highlights and scrolls to paragraphs.
type View interface {
	Highlight(index int)
	ScrollIntoView(index int)
	ClearHighlight()
}

// State is a snapshot of the player.
type State struct {
	IsPlaying            bool
	IsLoading            bool
	ActiveParagraphIndex int
	CurrentAudioURL      string
	CurrentSegmentID     string
	CurrentVersion       int
	AutoScrollEnabled    bool
	PrefetchedURLs       map[int]string
	LanguageCode         string
	Error                string
}

// Config configures a Player. Zero values take defaults.
type Config struct {
	LanguageCode  string
	VoiceID       string
	SessionID     string
	MaxVersion    int
	PrefetchAhead int
	FetchTimeout  time.Duration
	Logger        *slog.Logger
}

// Player is the narration playback state machine.
type Player struct {
	src   SegmentSource
	audio Audio
	view  View
	log   *slog.Logger
	cfg   Config

	mu         sync.Mutex
	paragraphs []string
	state      State
	prefetched map[int]Segment
	pending    map[int]bool
	// generation changes whenever cached audio becomes invalid (language or
	// section change). request changes whenever a newer playback request
	// replaces the current one.
	generation uint64
	request    uint64

	background sync.WaitGroup
}

// New creates a Player for paragraphs.
func New(src SegmentSource, audio Audio, view View, paragraphs []string, cfg Config) *Player {
	if cfg.MaxVersion <= 0 {
		cfg.MaxVersion = defaultMaxVersion
	}
	if cfg.PrefetchAhead <= 0 {
		cfg.PrefetchAhead = defaultPrefetchAhead
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Player{
		src:        src,
		audio:      audio,
		view:       view,
		log:        log.With("component", "narration_player"),
		cfg:        cfg,
		paragraphs: append([]string(nil), paragraphs...),
		state: State{
			ActiveParagraphIndex: -1,
			AutoScrollEnabled:    true,
			LanguageCode:         cfg.LanguageCode,
		},
		prefetched: make(map[int]Segment),
		pending:    make(map[int]bool),
	}
}

// State returns a snapshot of the player.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	s.PrefetchedURLs = make(map[int]string, len(p.prefetched))
	for i, seg := range p.prefetched {
		s.PrefetchedURLs[i] = seg.URL
	}
	return s
}

// SessionID is the anonymous id sent with issue reports.
func (p *Player) SessionID() string {
	return p.cfg.SessionID
}

// Wait blocks until background prefetches finish.
func (p *Player) Wait() {
	p.background.Wait()
}

// ---------------------------------------------------------------------------
// Playback
// ---------------------------------------------------------------------------

// PlayParagraph loads and plays paragraph index at version. A prefetched
// first version is used without a fetch. On success the next paragraphs
// are prefetched in the background.
func (p *Player) PlayParagraph(ctx context.Context, index, version int) error {
	if version < 1 {
		version = 1
	}

	p.mu.Lock()
	if index < 0 || index >= len(p.paragraphs) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	p.request++
	req, gen := p.request, p.generation
	if seg, ok := p.prefetched[index]; ok && seg.Version == version {
		err := p.startLocked(index, seg)
		p.mu.Unlock()
		return err
	}
	p.state.IsLoading = true
	p.state.Error = ""
	fr := p.fetchRequestLocked(index, version)
	p.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, p.cfg.FetchTimeout)
	seg, err := p.src.Fetch(fctx, fr)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if req != p.request || gen != p.generation {
		return ErrSuperseded
	}
	if err != nil {
		p.state.IsLoading = false
		p.state.Error = ErrTextLoad
		p.log.WarnContext(ctx, "segment fetch failed", slog.Int("index", index), slog.Int("version", version), slog.String("error", err.Error()))
		return fmt.Errorf("fetch paragraph %d: %w", index, err)
	}
	if seg.Version == 0 {
		seg.Version = version
	}
	return p.startLocked(index, seg)
}

// startLocked assigns seg to the audio element and starts playback.
func (p *Player) startLocked(index int, seg Segment) error {
	p.state.IsLoading = false
	p.state.ActiveParagraphIndex = index
	p.state.CurrentAudioURL = seg.URL
	p.state.CurrentSegmentID = seg.ID
	p.state.CurrentVersion = seg.Version

	p.audio.SetSource(seg.URL)
	if err := p.audio.Play(); err != nil {
		p.state.IsPlaying = false
		p.state.Error = ErrTextPlay
		p.log.Warn("audio play failed", slog.Int("index", index), slog.String("error", err.Error()))
		return fmt.Errorf("play paragraph %d: %w", index, err)
	}
	p.state.IsPlaying = true
	p.state.Error = ""

	p.view.Highlight(index)
	if p.state.AutoScrollEnabled {
		p.view.ScrollIntoView(index)
	}
	for i := index + 1; i <= index+p.cfg.PrefetchAhead && i < len(p.paragraphs); i++ {
		p.prefetchLocked(i)
	}
	return nil
}

// prefetchLocked starts a background fetch of paragraph i's first version.
// Results that arrive after a reset are dropped.
func (p *Player) prefetchLocked(i int) {
	if _, ok := p.prefetched[i]; ok || p.pending[i] {
		return
	}
	p.pending[i] = true
	gen := p.generation
	fr := p.fetchRequestLocked(i, 1)

	p.background.Add(1)
	go func() {
		defer p.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.FetchTimeout)
		defer cancel()
		seg, err := p.src.Fetch(ctx, fr)

		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.generation {
			return
		}
		delete(p.pending, i)
		if err != nil {
			p.log.Debug("prefetch failed", slog.Int("index", i), slog.String("error", err.Error()))
			return
		}
		if seg.Version == 0 {
			seg.Version = 1
		}
		p.prefetched[i] = seg
	}()
}

func (p *Player) fetchRequestLocked(index, version int) FetchRequest {
	return FetchRequest{
		Text:         p.paragraphs[index],
		LanguageCode: p.state.LanguageCode,
		VoiceID:      p.cfg.VoiceID,
		Version:      version,
	}
}

// OnAudioEnded handles the audio element's ended event: the next paragraph
// plays, from the prefetch cache when possible. After the last paragraph
// playback stops and the highlight clears. This is the only operation that
// advances on its own. An ended event that arrives while a user-initiated
// load is in flight belongs to the previous clip and is ignored.
func (p *Player) OnAudioEnded(ctx context.Context) error {
	p.mu.Lock()
	if !p.state.IsPlaying || p.state.IsLoading {
		p.mu.Unlock()
		return nil
	}
	next := p.state.ActiveParagraphIndex + 1
	if next >= len(p.paragraphs) {
		p.request++
		p.resetPlaybackLocked()
		p.mu.Unlock()
		return nil
	}
	if seg, ok := p.prefetched[next]; ok {
		p.request++
		err := p.startLocked(next, seg)
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()
	return p.PlayParagraph(ctx, next, 1)
}

// ---------------------------------------------------------------------------
// Issue reports
// ---------------------------------------------------------------------------

// ReportIssue pauses playback and reports the current segment. When the
// source offers a next version within the cap, that version of the same
// paragraph is fetched and played.
func (p *Player) ReportIssue(ctx context.Context, issueType, comment string) (ReportResponse, error) {
	p.mu.Lock()
	if p.state.CurrentSegmentID == "" {
		p.mu.Unlock()
		return ReportResponse{}, ErrNothingPlaying
	}
	p.request++
	p.audio.Pause()
	p.state.IsPlaying = false
	index, version := p.state.ActiveParagraphIndex, p.state.CurrentVersion
	r := Report{
		SegmentID: p.state.CurrentSegmentID,
		Version:   version,
		IssueType: issueType,
		Comment:   comment,
		SessionID: p.cfg.SessionID,
	}
	p.mu.Unlock()

	resp, err := p.src.Report(ctx, r)
	if err != nil {
		p.mu.Lock()
		p.state.Error = ErrTextReport
		p.mu.Unlock()
		return ReportResponse{}, fmt.Errorf("report segment %s: %w", r.SegmentID, err)
	}

	if !resp.HasNextVersion || resp.NextVersion <= version || resp.NextVersion > p.cfg.MaxVersion {
		p.log.InfoContext(ctx, "issue queued for review", slog.String("segment_id", r.SegmentID), slog.Int("version", version))
		return resp, nil
	}
	if err := p.PlayParagraph(ctx, index, resp.NextVersion); err != nil {
		return resp, err
	}
	return resp, nil
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

// SkipTo plays paragraph index from its first version.
func (p *Player) SkipTo(ctx context.Context, index int) error {
	return p.PlayParagraph(ctx, index, 1)
}

// SkipForward plays the paragraph after the active one.
func (p *Player) SkipForward(ctx context.Context) error {
	p.mu.Lock()
	next := p.state.ActiveParagraphIndex + 1
	p.mu.Unlock()
	return p.PlayParagraph(ctx, next, 1)
}

// SkipBackward plays the paragraph before the active one, or the first.
func (p *Player) SkipBackward(ctx context.Context) error {
	p.mu.Lock()
	prev := max(p.state.ActiveParagraphIndex-1, 0)
	p.mu.Unlock()
	return p.PlayParagraph(ctx, prev, 1)
}

// ---------------------------------------------------------------------------
// Resets
// ---------------------------------------------------------------------------

// Stop halts playback and clears the highlight. Prefetched audio is kept.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.request++
	p.audio.Pause()
	p.resetPlaybackLocked()
}

// SetLanguage switches the narration language. Cached audio is keyed by
// language, so playback stops and every prefetched entry is dropped.
func (p *Player) SetLanguage(code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if code == p.state.LanguageCode {
		return
	}
	p.state.LanguageCode = code
	p.invalidateLocked()
}

// SetParagraphs replaces the section being narrated and resets the player.
func (p *Player) SetParagraphs(paragraphs []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paragraphs = append([]string(nil), paragraphs...)
	p.invalidateLocked()
}

// SetAutoScroll toggles scrolling the active paragraph into view.
func (p *Player) SetAutoScroll(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.AutoScrollEnabled = enabled
}

func (p *Player) invalidateLocked() {
	p.generation++
	p.request++
	p.audio.Pause()
	p.resetPlaybackLocked()
	clear(p.prefetched)
	clear(p.pending)
	p.state.Error = ""
}

func (p *Player) resetPlaybackLocked() {
	p.state.IsPlaying = false
	p.state.IsLoading = false
	p.state.ActiveParagraphIndex = -1
	p.state.CurrentAudioURL = ""
	p.state.CurrentSegmentID = ""
	p.state.CurrentVersion = 0
	p.view.ClearHighlight()
}

// Prefetched reports the segment cached for paragraph index, if any.
func (p *Player) Prefetched(index int) (Segment, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	seg, ok := p.prefetched[index]
	return seg, ok
}
