package repository

import (
	"context"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/usecase/shared"
)

type WebhookDeliveryQueries interface {
	InsertWebhookDelivery(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWebhookDeliveryParams) (int64, error)
}

type WebhookDeliveryRepository struct {
	queries WebhookDeliveryQueries
	db      sqlc.DBTX
}

func NewWebhookDeliveryRepository(queries WebhookDeliveryQueries, db sqlc.DBTX) *WebhookDeliveryRepository {
	return &WebhookDeliveryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookDeliveryRepository) Record(ctx context.Context, d shared.WebhookDelivery) (bool, error) {
	n, err := r.queries.InsertWebhookDelivery(ctx, r.db, sqlc.InsertWebhookDeliveryParams{
		EventID:   d.EventID,
		EventType: d.EventType,
		Outcome:   d.Outcome,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook delivery", err)
	}
	return n > 0, nil
}
