package repository

import (
	"context"
	"time"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/pgconv"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingEventQueries interface {
	InsertBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingEventParams) error
	ClaimUnpublishedBookingEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.BookingEvents, error)
	MarkBookingEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventsPublishedParams) error
}

// BookingEventRepository writes the outbox table.
type BookingEventRepository struct {
	queries BookingEventQueries
	db      sqlc.DBTX
}

func NewBookingEventRepository(queries BookingEventQueries, db sqlc.DBTX) *BookingEventRepository {
	return &BookingEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingEventRepository) Append(ctx context.Context, ev shared.BookingEvent) error {
	params := sqlc.InsertBookingEventParams{
		ID:        ev.ID,
		BookingID: ev.BookingID,
		Kind:      string(ev.Kind),
		Payload:   ev.Payload,
		CreatedAt: pgconv.TimeToPgtype(ev.CreatedAt),
	}
	if err := r.queries.InsertBookingEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

func (r *BookingEventRepository) ClaimUnpublished(ctx context.Context, limit int32) ([]shared.BookingEvent, error) {
	rows, err := r.queries.ClaimUnpublishedBookingEvents(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	events := make([]shared.BookingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.BookingEvent{
			ID:        row.ID,
			BookingID: row.BookingID,
			Kind:      shared.BookingEventKind(row.Kind),
			Payload:   row.Payload,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return events, nil
}

func (r *BookingEventRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	params := sqlc.MarkBookingEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(at),
		Ids:         ids,
	}
	if err := r.queries.MarkBookingEventsPublished(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark booking events published", err)
	}
	return nil
}
