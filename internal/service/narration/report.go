package narration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ReportResult tells the player which version to request next.
type ReportResult struct {
	Report         *domain.NarrationReport
	NextVersion    int
	HasNextVersion bool
}

// ReportIssue stores a listener report. Below the version cap the report is
// marked regenerated and the caller is pointed at the next version; at the
// cap it is queued for a human.
func (s *Service) ReportIssue(ctx context.Context, input ReportInput) (*ReportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	seg, err := s.segments.GetSegmentByID(ctx, input.SegmentID)
	if err != nil {
		return nil, fmt.Errorf("narration.ReportIssue: %w", err)
	}

	res := &ReportResult{NextVersion: seg.Version}
	status := domain.ReportQueued
	if seg.Version < s.cfg.MaxVersion {
		status = domain.ReportRegenerated
		res.NextVersion = seg.Version + 1
		res.HasNextVersion = true
	}

	var comment *string
	if input.Comment != nil {
		if c := strings.TrimSpace(*input.Comment); c != "" {
			comment = &c
		}
	}
	res.Report, err = s.segments.CreateReport(ctx, &domain.NarrationReport{
		ID:        uuid.New(),
		SegmentID: seg.ID,
		Version:   seg.Version,
		IssueType: input.IssueType,
		Comment:   comment,
		SessionID: strings.TrimSpace(input.SessionID),
		Status:    status,
	})
	if err != nil {
		return nil, fmt.Errorf("narration.ReportIssue: %w", err)
	}

	level := slog.LevelInfo
	if status == domain.ReportQueued {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "narration issue reported",
		slog.String("segment_id", seg.ID.String()),
		slog.Int("version", seg.Version),
		slog.String("issue_type", input.IssueType.String()),
		slog.String("status", string(status)),
	)
	return res, nil
}

// ListReports returns the report queue, newest first.
func (s *Service) ListReports(ctx context.Context, input ListReportsInput) ([]domain.NarrationReport, int, error) {
	f, err := input.filter()
	if err != nil {
		return nil, 0, err
	}
	reports, total, err := s.segments.ListReports(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("narration.ListReports: %w", err)
	}
	return reports, total, nil
}

// UpdateReportStatus records an admin's decision on a report.
func (s *Service) UpdateReportStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.NarrationReport, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	var updated *domain.NarrationReport
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.segments.UpdateReportStatus(ctx, id, status)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditUpdate, map[string]any{"status": status})
	})
	if err != nil {
		return nil, fmt.Errorf("narration.UpdateReportStatus: %w", err)
	}
	return updated, nil
}
