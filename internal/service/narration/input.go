package narration

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ResolveInput identifies one narrated paragraph.
type ResolveInput struct {
	Text         string
	LanguageCode string
	VoiceID      string
	Version      int
}

// Validate checks the input against the configured text and version limits.
func (i ResolveInput) Validate(maxText, maxVersion int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	switch {
	case text == "":
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case len(text) > maxText:
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxText)})
	}

	lang := strings.TrimSpace(i.LanguageCode)
	if len(lang) < 2 || len(lang) > 10 {
		errs = append(errs, domain.FieldError{Field: "language_code", Message: "must be 2-10 characters"})
	}
	if len(i.VoiceID) > 50 {
		errs = append(errs, domain.FieldError{Field: "voice_id", Message: "too long"})
	}
	if i.Version < 1 || i.Version > maxVersion {
		errs = append(errs, domain.FieldError{Field: "version", Message: fmt.Sprintf("must be between 1 and %d", maxVersion)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReportInput is a listener's report about a segment.
type ReportInput struct {
	SegmentID uuid.UUID
	IssueType domain.IssueType
	Comment   *string
	SessionID string
}

func (i ReportInput) Validate() error {
	var errs []domain.FieldError
	if i.SegmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "segment_id", Message: "required"})
	}
	if !i.IssueType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "issue_type", Message: "invalid value"})
	}
	if i.Comment != nil && len(*i.Comment) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "comment", Message: fmt.Sprintf("max %d characters", maxCommentLen)})
	}
	sid := strings.TrimSpace(i.SessionID)
	if sid == "" || len(sid) > maxSessionIDLen {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListReportsInput filters the report queue.
type ListReportsInput struct {
	Status    string
	IssueType string
	Limit     int
	Offset    int
}

func (i ListReportsInput) filter() (domain.ListFilter, error) {
	var errs []domain.FieldError
	f := domain.ListFilter{Limit: i.Limit, Offset: i.Offset}
	if v := strings.TrimSpace(i.Status); v != "" {
		if !domain.ReportStatus(v).IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
		}
		f.Status = &v
	}
	if v := strings.TrimSpace(i.IssueType); v != "" {
		if !domain.IssueType(v).IsValid() {
			errs = append(errs, domain.FieldError{Field: "issue_type", Message: "invalid value"})
		}
		f.Type = &v
	}
	if i.Limit < 0 || i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return f, &domain.ValidationError{Errors: errs}
	}
	return f, nil
}
