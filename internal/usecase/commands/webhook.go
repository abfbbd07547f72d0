package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/pkg/tracing"
	"coliving-payments/internal/usecase/shared"
)

const ReconcileDuplicate ReconcileOutcome = "duplicate"

// errDeliveryRaced rolls back a transaction whose event id was recorded by a
// concurrent redelivery first.
var errDeliveryRaced = errs.New("webhook delivery already recorded")

type WebhookInput struct {
	Body      []byte
	Signature string
	// EventID is the gateway's delivery id, when it sends one.
	EventID string
}

type WebhookResult struct {
	Event   string
	Outcome ReconcileOutcome
}

type WebhookCommands interface {
	HandleWebhook(ctx context.Context, in WebhookInput) (*WebhookResult, error)
}

type webhookUseCaseImpl struct {
	uow           shared.UnitOfWork
	authenticator *payment.WebhookAuthenticator
	reconciler    *Reconciler
}

func NewWebhookUseCase(uow shared.UnitOfWork, authenticator *payment.WebhookAuthenticator, reconciler *Reconciler) WebhookCommands {
	return &webhookUseCaseImpl{uow: uow, authenticator: authenticator, reconciler: reconciler}
}

// HandleWebhook authenticates before parsing, so an unsigned body never
// reaches the store. Every authenticated event that is applied or
// deliberately dropped returns a nil error.
func (uc *webhookUseCaseImpl) HandleWebhook(ctx context.Context, in WebhookInput) (res *WebhookResult, err error) {
	payload, err := uc.authenticator.Authenticate(in.Body, in.Signature)
	if err != nil {
		metrics.SignatureRejectionsTotal.WithLabelValues("webhook").Inc()
		slog.Warn("webhook rejected: possible tampering", "reason", err.Error())
		return nil, errs.Mark(err, ErrUnauthenticated)
	}

	ev, err := payment.ParseEvent(payload)
	if err != nil {
		return nil, invalid(err)
	}
	name := string(ev.Event().Name())

	ctx, span := tracing.StartSpan(ctx, "webhooks.apply", tracing.EventName(name))
	defer func() {
		tracing.End(span, err)
		outcome := "error"
		if res != nil {
			outcome = string(res.Outcome)
		}
		metrics.WebhookEventsTotal.WithLabelValues(name, outcome).Inc()
	}()

	if in.EventID != "" {
		seen, err := uc.uow.CommandReads().WebhookDeliveryExists(ctx, in.EventID)
		if err != nil {
			return nil, storeFailure(err)
		}
		if seen {
			slog.Info("webhook redelivery acknowledged", "event_id", in.EventID, "event", name)
			return &WebhookResult{Event: name, Outcome: ReconcileDuplicate}, nil
		}
	}

	var outcome ReconcileOutcome
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, aerr := uc.reconciler.ApplyInTx(ctx, tx, ev)
		if aerr != nil {
			return aerr
		}
		outcome = o
		if in.EventID == "" {
			return nil
		}
		inserted, aerr := tx.WebhookDeliveries().Record(ctx, shared.WebhookDelivery{
			EventID:   in.EventID,
			EventType: name,
			Outcome:   string(o),
		})
		if aerr != nil {
			return aerr
		}
		if !inserted {
			return errDeliveryRaced
		}
		return nil
	})
	if errs.Is(err, errDeliveryRaced) {
		slog.Info("webhook redelivery raced a concurrent delivery", "event_id", in.EventID, "event", name)
		return &WebhookResult{Event: name, Outcome: ReconcileDuplicate}, nil
	}
	if err != nil {
		return nil, storeFailure(err)
	}

	return &WebhookResult{Event: name, Outcome: outcome}, nil
}
