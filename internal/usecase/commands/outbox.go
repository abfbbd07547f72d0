package commands

import (
	"context"

	"coliving-payments/internal/pkg/clock"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxCommands interface {
	// RelayBatch publishes one batch of unpublished booking events and
	// reports how many were sent.
	RelayBatch(ctx context.Context) (int, error)
}

type outboxUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	batchSize int32
}

func NewOutboxUseCase(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, batchSize int32) OutboxCommands {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &outboxUseCaseImpl{uow: uow, publisher: publisher, clock: clk, batchSize: batchSize}
}

// RelayBatch holds the claimed rows locked while publishing. A failed
// publish rolls back, leaving the rows for the next run; consumers must
// tolerate the duplicates this can produce.
func (uc *outboxUseCaseImpl) RelayBatch(ctx context.Context) (int, error) {
	sent := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		events, err := tx.Events().ClaimUnpublished(ctx, uc.batchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		if err := uc.publisher.Publish(ctx, events); err != nil {
			return errs.Mark(err, ErrUpstreamUnavailable)
		}

		ids := make([]uuid.UUID, len(events))
		for i, ev := range events {
			ids[i] = ev.ID
		}
		if err := tx.Events().MarkPublished(ctx, ids, uc.clock.Now()); err != nil {
			return err
		}
		sent = len(events)
		return nil
	})
	if err != nil {
		return 0, storeFailure(err)
	}
	if sent > 0 {
		metrics.OutboxPublishedTotal.Add(float64(sent))
	}
	return sent, nil
}
