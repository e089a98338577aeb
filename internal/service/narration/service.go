// Package narration resolves narrated paragraph audio and collects listener
// reports about it.
package narration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
)

const (
	auditEntity     = "narration_report"
	segmentKeyDir   = "segments/"
	audioMIME       = "audio/mpeg"
	maxCommentLen   = 2000
	maxSessionIDLen = 100

	defaultLoadTimeout = 90 * time.Second
)

type segmentRepo interface {
	GetSegmentByHash(ctx context.Context, hash string) (*domain.AudioSegment, error)
	GetSegmentByID(ctx context.Context, id uuid.UUID) (*domain.AudioSegment, error)
	CreateSegment(ctx context.Context, s *domain.AudioSegment) (*domain.AudioSegment, error)
	CreateReport(ctx context.Context, rep *domain.NarrationReport) (*domain.NarrationReport, error)
	ListReports(ctx context.Context, f domain.ListFilter) ([]domain.NarrationReport, int, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.NarrationReport, error)
}

type segmentCache interface {
	Get(ctx context.Context, hash string) (*domain.AudioSegment, bool, error)
	Set(ctx context.Context, seg *domain.AudioSegment) error
}

type synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type assetStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type auditor interface {
	Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements narration segment resolution and issue reports.
type Service struct {
	log          *slog.Logger
	segments     segmentRepo
	cache        segmentCache
	speech       synthesizer
	assets       assetStore
	audit        auditor
	tx           txManager
	cfg          config.NarrationConfig
	defaultVoice string
	inflight     singleflight.Group
}

// NewService creates a new narration service.
func NewService(
	logger *slog.Logger,
	segments segmentRepo,
	cache segmentCache,
	speech synthesizer,
	assets assetStore,
	audit auditor,
	tx txManager,
	cfg config.NarrationConfig,
	defaultVoice string,
) *Service {
	return &Service{
		log:          logger.With("service", "narration"),
		segments:     segments,
		cache:        cache,
		speech:       speech,
		assets:       assets,
		audit:        audit,
		tx:           tx,
		cfg:          cfg,
		defaultVoice: defaultVoice,
	}
}

func (s *Service) loadTimeout() time.Duration {
	if s.cfg.LoadTimeout > 0 {
		return s.cfg.LoadTimeout
	}
	return defaultLoadTimeout
}

// MaxVersion is the highest regeneration version a segment may reach.
func (s *Service) MaxVersion() int {
	return s.cfg.MaxVersion
}
