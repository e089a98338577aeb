package partner

import (
	"context"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const recordClickSQL = `
INSERT INTO clicks (id, partner_id, sub_link_id, ip_hash, user_agent_hash, referrer, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// RecordClick stores one click row.
func (r *Repo) RecordClick(ctx context.Context, c domain.Click) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordClickSQL,
		c.ID, c.PartnerID, c.SubLinkID, c.IPHash, c.UserAgentHash, c.Referrer, c.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "click", c.ID)
	}
	return nil
}
