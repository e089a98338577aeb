// Package audit records and lists back-office mutations.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	GetByAdmin(ctx context.Context, adminID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

// Service implements audit operations.
type Service struct {
	log  *slog.Logger
	repo auditRepo
	now  func() time.Time
}

// NewService creates a new audit service.
func NewService(logger *slog.Logger, repo auditRepo) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
		now:  time.Now,
	}
}

// Record appends an audit entry attributed to the admin in ctx.
func (s *Service) Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.Role != domain.RoleAdmin {
		return domain.ErrUnauthorized
	}

	id := entityID
	rec := domain.AuditRecord{
		ID:         uuid.New(),
		AdminID:    p.SubjectID,
		EntityType: entityType,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Log(ctx, rec); err != nil {
		return fmt.Errorf("audit.Record %s %s: %w", entityType, action, err)
	}
	return nil
}

// EntityHistory returns the newest changes made to one entity.
func (s *Service) EntityHistory(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if entityType == "" {
		return nil, domain.NewValidationError("entity_type", "required")
	}
	recs, err := s.repo.GetByEntity(ctx, entityType, entityID, domain.PageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("audit.EntityHistory: %w", err)
	}
	return recs, nil
}

// AdminActivity returns the newest changes made by one admin.
func (s *Service) AdminActivity(ctx context.Context, adminID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	if offset < 0 {
		offset = 0
	}
	recs, err := s.repo.GetByAdmin(ctx, adminID, domain.PageSize(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("audit.AdminActivity: %w", err)
	}
	return recs, nil
}
