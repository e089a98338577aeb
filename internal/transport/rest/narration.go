package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/narration"
)

type narrationService interface {
	Resolve(ctx context.Context, input narration.ResolveInput) (*narration.ResolveResult, error)
	ReportIssue(ctx context.Context, input narration.ReportInput) (*narration.ReportResult, error)
	ListReports(ctx context.Context, input narration.ListReportsInput) ([]domain.NarrationReport, int, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.NarrationReport, error)
}

// NarrationHandler serves narration audio segments and issue reports.
type NarrationHandler struct {
	svc narrationService
	log *slog.Logger
}

// NewNarrationHandler creates a NarrationHandler.
func NewNarrationHandler(svc narrationService, logger *slog.Logger) *NarrationHandler {
	return &NarrationHandler{svc: svc, log: logger.With("handler", "narration")}
}

type segmentRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
	VoiceID      string `json:"voiceId"`
	Version      int    `json:"version"`
}

type segmentResponse struct {
	SegmentID string `json:"segmentId"`
	AudioURL  string `json:"audioUrl"`
	Version   int    `json:"version"`
	Cached    bool   `json:"cached"`
}

// Segment handles POST /api/narration/segments.
func (h *NarrationHandler) Segment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Version == 0 {
		req.Version = 1
	}
	res, err := h.svc.Resolve(r.Context(), narration.ResolveInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, segmentResponse{
		SegmentID: res.Segment.ID.String(),
		AudioURL:  res.Segment.AudioURL,
		Version:   res.Segment.Version,
		Cached:    res.Cached,
	})
}

type reportRequest struct {
	SegmentID string  `json:"segmentId"`
	IssueType string  `json:"issueType"`
	Comment   *string `json:"comment"`
	SessionID string  `json:"sessionId"`
}

type reportIssueResponse struct {
	ReportID       string `json:"reportId"`
	Status         string `json:"status"`
	NextVersion    int    `json:"nextVersion"`
	HasNextVersion bool   `json:"hasNextVersion"`
}

// Report handles POST /api/narration/reports.
func (h *NarrationHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	segmentID, err := uuid.Parse(req.SegmentID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("segmentId", "invalid id"))
		return
	}
	res, err := h.svc.ReportIssue(r.Context(), narration.ReportInput{
		SegmentID: segmentID,
		IssueType: domain.IssueType(req.IssueType),
		Comment:   req.Comment,
		SessionID: req.SessionID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reportIssueResponse{
		ReportID:       res.Report.ID.String(),
		Status:         string(res.Report.Status),
		NextVersion:    res.NextVersion,
		HasNextVersion: res.HasNextVersion,
	})
}

// ListReports handles GET /api/admin/narration/reports.
func (h *NarrationHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, total, err := h.svc.ListReports(r.Context(), narration.ListReportsInput{
		Status:    queryString(r, "status"),
		IssueType: queryString(r, "issueType"),
		Limit:     queryInt(r, "limit", 50),
		Offset:    queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[reportResponse]{
		Items: mapSlice(reports, toReportResponse),
		Total: total,
	})
}

type updateReportRequest struct {
	Status string `json:"status"`
}

// UpdateReport handles PATCH /api/admin/narration/reports/{id}.
func (h *NarrationHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rep, err := h.svc.UpdateReportStatus(r.Context(), id, domain.ReportStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}
