package narration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ResolveResult is a playable segment.
type ResolveResult struct {
	Segment *domain.AudioSegment
	// Cached is false when the audio was synthesized for this request.
	Cached bool
}

// Resolve returns the audio for one paragraph. Lookups go cache, then
// database, then the speech provider; a synthesized segment is uploaded,
// recorded and cached before it is returned. Concurrent requests for the
// same segment share one synthesis, which runs detached from any single
// caller so one cancelled request does not fail the others.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*ResolveResult, error) {
	if err := input.Validate(s.cfg.MaxTextLength, s.cfg.MaxVersion); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	lang := strings.ToLower(strings.TrimSpace(input.LanguageCode))
	voice := strings.TrimSpace(input.VoiceID)
	if voice == "" {
		voice = s.defaultVoice
	}
	hash := domain.SegmentHash(text, lang, voice, input.Version)

	if seg, ok, err := s.cache.Get(ctx, hash); err != nil {
		s.log.WarnContext(ctx, "segment cache read failed", slog.String("hash", hash), slog.String("error", err.Error()))
	} else if ok {
		return &ResolveResult{Segment: seg, Cached: true}, nil
	}

	ch := s.inflight.DoChan(hash, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout())
		defer cancel()
		return s.load(loadCtx, hash, text, lang, voice, input.Version)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("narration.Resolve: %w", ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, fmt.Errorf("narration.Resolve: %w", r.Err)
		}
		return r.Val.(*ResolveResult), nil
	}
}

func (s *Service) load(ctx context.Context, hash, text, lang, voice string, version int) (*ResolveResult, error) {
	seg, err := s.segments.GetSegmentByHash(ctx, hash)
	switch {
	case err == nil:
		s.remember(ctx, seg)
		return &ResolveResult{Segment: seg, Cached: true}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	audio, err := s.speech.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, err
	}
	url, err := s.assets.Put(ctx, segmentKeyDir+hash+".mp3", audioMIME, audio)
	if err != nil {
		return nil, err
	}
	seg, err = s.segments.CreateSegment(ctx, &domain.AudioSegment{
		ID:           uuid.New(),
		Hash:         hash,
		LanguageCode: lang,
		VoiceID:      voice,
		Version:      version,
		AudioURL:     url,
		CharCount:    len(text),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "segment synthesized",
		slog.String("segment_id", seg.ID.String()),
		slog.String("language", lang),
		slog.Int("version", version),
		slog.Int("chars", seg.CharCount),
	)
	s.remember(ctx, seg)
	return &ResolveResult{Segment: seg}, nil
}

func (s *Service) remember(ctx context.Context, seg *domain.AudioSegment) {
	if err := s.cache.Set(ctx, seg); err != nil {
		s.log.WarnContext(ctx, "segment cache write failed", slog.String("hash", seg.Hash), slog.String("error", err.Error()))
	}
}
