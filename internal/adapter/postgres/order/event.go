package order

import (
	"context"
	"fmt"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const recordEventSQL = `
INSERT INTO webhook_events (id, type, processed_at) VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`

const eventProcessedSQL = `SELECT EXISTS (SELECT 1 FROM webhook_events WHERE id = $1)`

// RecordEvent marks an event id as processed. It returns false when the id
// was already recorded.
func (r *Repo) RecordEvent(ctx context.Context, e domain.WebhookEvent) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordEventSQL, e.ID, e.Type, e.ProcessedAt)
	if err != nil {
		return false, postgres.MapError(err, "webhook_event", e.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// EventProcessed reports whether the event id was already recorded.
func (r *Repo) EventProcessed(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, eventProcessedSQL, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check webhook event: %w", err)
	}
	return ok, nil
}
