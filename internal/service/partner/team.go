package partner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
)

// CreateTeamMemberResult is the new member plus whether the invite was sent.
type CreateTeamMemberResult struct {
	Member    *domain.TeamMember
	EmailSent bool
}

// ListTeam returns the caller's team. Partner owners only.
func (s *Service) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	v, err := s.ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.partners.ListTeamMembers(ctx, v.partner.ID)
	if err != nil {
		return nil, fmt.Errorf("partner.ListTeam: %w", err)
	}
	return members, nil
}

// CreateTeamMember adds a view-only member with its own access code and
// waits for the invite email to be handed to the provider.
func (s *Service) CreateTeamMember(ctx context.Context, input CreateTeamMemberInput) (*CreateTeamMemberResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	v, err := s.ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	code, err := s.newAccessCode(ctx, memberCodePrefix)
	if err != nil {
		return nil, fmt.Errorf("partner.CreateTeamMember code: %w", err)
	}

	now := s.now().UTC()
	member, err := s.partners.CreateTeamMember(ctx, &domain.TeamMember{
		ID:         uuid.New(),
		PartnerID:  v.partner.ID,
		Name:       strings.TrimSpace(input.Name),
		Email:      domain.NormalizeEmail(input.Email),
		Role:       input.Role,
		AccessCode: code,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("partner.CreateTeamMember: %w", err)
	}

	s.log.InfoContext(ctx, "team member created",
		slog.String("partner_id", v.partner.ID.String()),
		slog.String("member_id", member.ID.String()),
		slog.String("role", member.Role.String()),
	)

	return &CreateTeamMemberResult{Member: member, EmailSent: s.sendInvite(ctx, v.partner, member)}, nil
}

// UpdateTeamMember changes a member's name, role or active flag. Partner
// owners only. Deactivation ends the member's sessions.
func (s *Service) UpdateTeamMember(ctx context.Context, id uuid.UUID, input UpdateTeamMemberInput) (*domain.TeamMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	v, err := s.ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.updateMember(ctx, v.partner.ID, id, input)
}

// DeactivateTeamMember disables a member's access. Partner owners only.
func (s *Service) DeactivateTeamMember(ctx context.Context, id uuid.UUID) error {
	v, err := s.ownerFromCtx(ctx)
	if err != nil {
		return err
	}
	inactive := false
	_, err = s.updateMember(ctx, v.partner.ID, id, UpdateTeamMemberInput{Active: &inactive})
	return err
}

func (s *Service) updateMember(ctx context.Context, partnerID, id uuid.UUID, input UpdateTeamMemberInput) (*domain.TeamMember, error) {
	member, err := s.partners.GetTeamMember(ctx, partnerID, id)
	if err != nil {
		return nil, fmt.Errorf("partner.UpdateTeamMember get: %w", err)
	}

	if input.Name != nil {
		member.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	if input.Active != nil {
		member.Active = *input.Active
	}

	updated, err := s.partners.UpdateTeamMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("partner.UpdateTeamMember: %w", err)
	}

	if !updated.Active {
		if _, err := s.sessions.EndAllFor(ctx, updated.ID); err != nil {
			s.log.WarnContext(ctx, "end member sessions failed",
				slog.String("member_id", updated.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return updated, nil
}

// ownerFromCtx resolves the caller and requires a partner owner.
func (s *Service) ownerFromCtx(ctx context.Context) (*viewer, error) {
	v, err := s.viewerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !v.isOwner() || !v.perms.CanManageTeam {
		return nil, domain.ErrForbidden
	}
	return v, nil
}

func (s *Service) sendInvite(ctx context.Context, p *domain.Partner, m *domain.TeamMember) bool {
	msg, err := s.templates.TeamInvite(email.TeamInvite{
		Email:       m.Email,
		Name:        m.Name,
		PartnerName: p.Name,
		AccessCode:  m.AccessCode,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "render team invite", slog.String("error", err.Error()))
		return false
	}
	return s.notifier.Deliver(ctx, msg) == nil
}
