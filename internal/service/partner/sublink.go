package partner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ListSubLinks returns the sub-links of the caller's partner account.
func (s *Service) ListSubLinks(ctx context.Context) ([]domain.SubLink, error) {
	v, err := s.viewerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !v.perms.CanViewClicks {
		return nil, domain.ErrForbidden
	}

	links, err := s.partners.ListSubLinks(ctx, v.partner.ID)
	if err != nil {
		return nil, fmt.Errorf("partner.ListSubLinks: %w", err)
	}
	return links, nil
}

// CreateSubLink adds a tracking code under the caller's partner. The code is
// the partner slug joined with the slugified label; a numeric suffix is
// appended when it is already taken. Team members may create sub-links,
// which are attributed to them.
func (s *Service) CreateSubLink(ctx context.Context, input CreateSubLinkInput) (*domain.SubLink, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.viewerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !v.perms.CanCreateSubLinks {
		return nil, domain.ErrForbidden
	}

	link := &domain.SubLink{
		PartnerID: v.partner.ID,
		Label:     input.Label,
		CreatedAt: s.now().UTC(),
	}
	if v.member != nil {
		id := v.member.ID
		link.TeamMemberID = &id
	}

	base := v.partner.Slug + "-" + domain.Slugify(input.Label)
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		link.ID = uuid.New()
		link.Code = base
		if attempt > 1 {
			link.Code = base + "-" + strconv.Itoa(attempt)
		}

		created, err := s.partners.CreateSubLink(ctx, link)
		if err == nil {
			s.log.InfoContext(ctx, "sub-link created",
				slog.String("partner_id", v.partner.ID.String()),
				slog.String("code", created.Code),
			)
			return created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("partner.CreateSubLink: %w", err)
		}
	}
	return nil, fmt.Errorf("partner.CreateSubLink: %w: code %q is taken", domain.ErrConflict, base)
}

// DeleteSubLink removes a sub-link. Only the partner owner may delete.
func (s *Service) DeleteSubLink(ctx context.Context, id uuid.UUID) error {
	v, err := s.viewerFromCtx(ctx)
	if err != nil {
		return err
	}
	if !v.isOwner() {
		return domain.ErrForbidden
	}

	if err := s.partners.DeleteSubLink(ctx, v.partner.ID, id); err != nil {
		return fmt.Errorf("partner.DeleteSubLink: %w", err)
	}
	return nil
}
