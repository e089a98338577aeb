// Package speech synthesizes narration audio through an OpenAI-compatible
// text-to-speech API.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/thronelight/platform/internal/config"
)

// ErrRejected is returned when the provider refuses the input (4xx).
var ErrRejected = errors.New("speech: request rejected")

// Provider calls the /audio/speech endpoint.
type Provider struct {
	client *resty.Client
	model  string
	log    *slog.Logger
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// NewProvider creates a Provider. A failed call is retried once on 5xx or
// network errors.
func NewProvider(cfg config.SpeechConfig, logger *slog.Logger) *Provider {
	log := logger.With("adapter", "speech")
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(1).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
		}).
		AddRetryHook(func(r *resty.Response, err error) {
			reason := "network error"
			if err == nil && r != nil {
				reason = fmt.Sprintf("status %d", r.StatusCode())
			}
			log.Warn("speech retry", slog.String("reason", reason))
		})

	return &Provider{client: client, model: cfg.Model, log: log}
}

// Synthesize returns MP3 audio for text spoken by voice.
func (p *Provider) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(speechRequest{Model: p.model, Input: text, Voice: voice, ResponseFormat: "mp3"}).
		Post("/audio/speech")
	if err != nil {
		p.log.ErrorContext(ctx, "speech request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("speech: request failed: %w", err)
	}

	switch {
	case resp.StatusCode() >= 500:
		return nil, fmt.Errorf("speech: unexpected status %d", resp.StatusCode())
	case resp.StatusCode() >= 400:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode(), truncate(resp.String(), 200))
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return nil, errors.New("speech: empty audio response")
	}

	p.log.DebugContext(ctx, "speech synthesized",
		slog.String("voice", voice),
		slog.Int("chars", len(text)),
		slog.Int("bytes", len(audio)),
		slog.Duration("duration", time.Since(start)),
	)
	return audio, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
