// Package narration implements audio segment and narration report
// persistence using PostgreSQL.
package narration

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides narration persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new narration repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const segmentColumns = `id, hash, language_code, voice_id, version, audio_url, char_count, created_at`

// createSegmentSQL keeps the first writer's row when two requests
// synthesize the same segment concurrently.
const createSegmentSQL = `
INSERT INTO audio_segments (id, hash, language_code, voice_id, version, audio_url, char_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (hash) DO UPDATE SET hash = EXCLUDED.hash
RETURNING ` + segmentColumns

const getSegmentByHashSQL = `SELECT ` + segmentColumns + ` FROM audio_segments WHERE hash = $1`

const getSegmentByIDSQL = `SELECT ` + segmentColumns + ` FROM audio_segments WHERE id = $1`

var reportColumns = []string{"id", "segment_id", "version", "issue_type", "comment", "session_id", "status", "created_at"}

const reportReturning = `RETURNING id, segment_id, version, issue_type, comment, session_id, status, created_at`

const createReportSQL = `
INSERT INTO narration_reports (id, segment_id, version, issue_type, comment, session_id, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
` + reportReturning

const updateReportStatusSQL = `
UPDATE narration_reports SET status = $2 WHERE id = $1
` + reportReturning

// ---------------------------------------------------------------------------
// Segments
// ---------------------------------------------------------------------------

// GetSegmentByHash returns a cached segment by its content hash.
func (r *Repo) GetSegmentByHash(ctx context.Context, hash string) (*domain.AudioSegment, error) {
	s, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSegmentByHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "audio_segment", hash)
	}
	return s, nil
}

// GetSegmentByID returns a segment by primary key.
func (r *Repo) GetSegmentByID(ctx context.Context, id uuid.UUID) (*domain.AudioSegment, error) {
	s, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSegmentByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "audio_segment", id)
	}
	return s, nil
}

// CreateSegment records a synthesized segment, returning the existing row
// when the hash is already present.
func (r *Repo) CreateSegment(ctx context.Context, s *domain.AudioSegment) (*domain.AudioSegment, error) {
	created, err := scanSegment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSegmentSQL,
		s.ID, s.Hash, s.LanguageCode, s.VoiceID, s.Version, s.AudioURL, s.CharCount,
	))
	if err != nil {
		return nil, postgres.MapError(err, "audio_segment", s.Hash)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// CreateReport stores a listener report.
func (r *Repo) CreateReport(ctx context.Context, rep *domain.NarrationReport) (*domain.NarrationReport, error) {
	created, err := scanReport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createReportSQL,
		rep.ID, rep.SegmentID, rep.Version, string(rep.IssueType), rep.Comment, rep.SessionID, string(rep.Status),
	))
	if err != nil {
		return nil, postgres.MapError(err, "narration_report", rep.ID)
	}
	return created, nil
}

// ListReports returns reports filtered by status and issue type (Type),
// newest first.
func (r *Repo) ListReports(ctx context.Context, f domain.ListFilter) ([]domain.NarrationReport, int, error) {
	where := postgres.FilterWhere(domain.ListFilter{Status: f.Status})
	if f.Type != nil && *f.Type != "" {
		where = append(where, sq.Eq{"issue_type": *f.Type})
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("narration_reports").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count reports: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(reportColumns...).From("narration_reports").Where(where).OrderBy("created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reports: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.NarrationReport{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	return reports, total, nil
}

// UpdateReportStatus sets a report's review status.
func (r *Repo) UpdateReportStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.NarrationReport, error) {
	rep, err := scanReport(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateReportStatusSQL, id, string(status)))
	if err != nil {
		return nil, postgres.MapError(err, "narration_report", id)
	}
	return rep, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSegment(row pgx.Row) (*domain.AudioSegment, error) {
	var s domain.AudioSegment
	if err := row.Scan(&s.ID, &s.Hash, &s.LanguageCode, &s.VoiceID, &s.Version, &s.AudioURL, &s.CharCount, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanReport(row pgx.Row) (*domain.NarrationReport, error) {
	var (
		rep               domain.NarrationReport
		issueType, status string
	)
	if err := row.Scan(&rep.ID, &rep.SegmentID, &rep.Version, &issueType, &rep.Comment, &rep.SessionID, &status, &rep.CreatedAt); err != nil {
		return nil, err
	}
	rep.IssueType = domain.IssueType(issueType)
	rep.Status = domain.ReportStatus(status)
	return &rep, nil
}
