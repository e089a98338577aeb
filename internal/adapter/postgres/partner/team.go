package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const teamColumns = `id, partner_id, name, email, role, access_code, active, created_at, updated_at`

const createTeamMemberSQL = `
INSERT INTO team_members (id, partner_id, name, email, role, access_code, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING ` + teamColumns

const getTeamMemberSQL = `
SELECT ` + teamColumns + ` FROM team_members WHERE id = $1 AND partner_id = $2`

const getTeamMemberByIDSQL = `SELECT ` + teamColumns + ` FROM team_members WHERE id = $1`

const getTeamMemberByAccessCodeSQL = `SELECT ` + teamColumns + ` FROM team_members WHERE access_code = $1`

const listTeamMembersSQL = `
SELECT ` + teamColumns + ` FROM team_members WHERE partner_id = $1 ORDER BY created_at`

const updateTeamMemberSQL = `
UPDATE team_members SET name = $3, role = $4, active = $5, updated_at = now()
WHERE id = $1 AND partner_id = $2
RETURNING ` + teamColumns

// CreateTeamMember inserts a team member under its partner.
func (r *Repo) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createTeamMemberSQL,
		m.ID, m.PartnerID, m.Name, m.Email, string(m.Role), m.AccessCode, m.Active,
	)
	created, err := scanTeamMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "team_member", m.ID)
	}
	return created, nil
}

// GetTeamMember returns a team member scoped to a partner.
func (r *Repo) GetTeamMember(ctx context.Context, partnerID, id uuid.UUID) (*domain.TeamMember, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getTeamMemberSQL, id, partnerID)
	m, err := scanTeamMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "team_member", id)
	}
	return m, nil
}

// GetTeamMemberByID returns a team member without partner scoping.
func (r *Repo) GetTeamMemberByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getTeamMemberByIDSQL, id)
	m, err := scanTeamMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "team_member", id)
	}
	return m, nil
}

// GetTeamMemberByAccessCode returns a team member by login access code.
func (r *Repo) GetTeamMemberByAccessCode(ctx context.Context, code string) (*domain.TeamMember, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getTeamMemberByAccessCodeSQL, code)
	m, err := scanTeamMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "team_member", "access code")
	}
	return m, nil
}

// ListTeamMembers returns a partner's team in creation order.
func (r *Repo) ListTeamMembers(ctx context.Context, partnerID uuid.UUID) ([]domain.TeamMember, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listTeamMembersSQL, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

// UpdateTeamMember persists name, role and active flag.
func (r *Repo) UpdateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateTeamMemberSQL,
		m.ID, m.PartnerID, m.Name, string(m.Role), m.Active,
	)
	updated, err := scanTeamMember(row)
	if err != nil {
		return nil, postgres.MapError(err, "team_member", m.ID)
	}
	return updated, nil
}

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var (
		m    domain.TeamMember
		role string
	)
	if err := row.Scan(&m.ID, &m.PartnerID, &m.Name, &m.Email, &role, &m.AccessCode, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.TeamRole(role)
	return &m, nil
}
