package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSource is a SegmentSource backed by the platform's narration API.
type HTTPSource struct {
	client *resty.Client
}

// NewHTTPSource creates a source for the API at baseURL, e.g.
// "https://thronelight.com".
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

type segmentRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
	VoiceID      string `json:"voiceId,omitempty"`
	Version      int    `json:"version"`
}

type segmentResponse struct {
	SegmentID string `json:"segmentId"`
	AudioURL  string `json:"audioUrl"`
	Version   int    `json:"version"`
}

type reportRequest struct {
	SegmentID string `json:"segmentId"`
	IssueType string `json:"issueType"`
	Comment   string `json:"comment,omitempty"`
	SessionID string `json:"sessionId"`
}

type reportResponse struct {
	NextVersion    int  `json:"nextVersion"`
	HasNextVersion bool `json:"hasNextVersion"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Fetch resolves one paragraph's audio.
func (s *HTTPSource) Fetch(ctx context.Context, req FetchRequest) (Segment, error) {
	var out segmentResponse
	var apiErr errorResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(segmentRequest(req)).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/narration/segments")
	if err != nil {
		return Segment{}, fmt.Errorf("fetch segment: %w", err)
	}
	if resp.IsError() {
		return Segment{}, fmt.Errorf("fetch segment: status %d: %s", resp.StatusCode(), apiErr.Error)
	}
	return Segment{ID: out.SegmentID, URL: out.AudioURL, Version: out.Version}, nil
}

// Report posts an issue report.
func (s *HTTPSource) Report(ctx context.Context, r Report) (ReportResponse, error) {
	var out reportResponse
	var apiErr errorResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(reportRequest{SegmentID: r.SegmentID, IssueType: r.IssueType, Comment: r.Comment, SessionID: r.SessionID}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/narration/reports")
	if err != nil {
		return ReportResponse{}, fmt.Errorf("report issue: %w", err)
	}
	if resp.IsError() {
		return ReportResponse{}, fmt.Errorf("report issue: status %d: %s", resp.StatusCode(), apiErr.Error)
	}
	return ReportResponse(out), nil
}
