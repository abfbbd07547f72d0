package commands

import (
	"context"
	"log/slog"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/payment"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/pkg/metrics"
	"coliving-payments/internal/pkg/tracing"

	"github.com/google/uuid"
)

type VerifyPaymentInput struct {
	OrderID    string
	PaymentID  string
	Signature  string
	PropertyID uuid.UUID
	RoomID     *uuid.UUID
	Name       string
	Email      string
	Phone      string
	UserID     *uuid.UUID
}

type VerifyPaymentResult struct {
	BookingID *uuid.UUID
	PaymentID string
	Outcome   MaterializeOutcome
}

type PaymentCommands interface {
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error)
}

type paymentUseCaseImpl struct {
	verifier     *payment.ProofVerifier
	materializer *BookingMaterializer
}

func NewPaymentUseCase(verifier *payment.ProofVerifier, materializer *BookingMaterializer) PaymentCommands {
	return &paymentUseCaseImpl{verifier: verifier, materializer: materializer}
}

// VerifyPayment checks the client's proof and materializes the booking.
// Once the proof is authentic a store failure is not an error for the
// client: it gets OutcomeBookingPending and may resubmit the same proof.
func (uc *paymentUseCaseImpl) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (res *VerifyPaymentResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "payments.verify",
		tracing.OrderID(in.OrderID), tracing.PaymentID(in.PaymentID))
	defer func() { tracing.End(span, err) }()

	proof, ok := uc.verifier.Verify(payment.Proof{
		OrderID:   in.OrderID,
		PaymentID: in.PaymentID,
		Signature: in.Signature,
	})
	if !ok {
		metrics.SignatureRejectionsTotal.WithLabelValues("client").Inc()
		slog.Warn("payment proof rejected: possible tampering",
			"order_id", in.OrderID,
			"payment_id", in.PaymentID)
		return nil, ErrUnauthenticated
	}

	requester, err := booking.NewRequester(in.Name, in.Email, in.Phone, in.UserID)
	if err != nil {
		return nil, invalid(err)
	}

	out, err := uc.materializer.Materialize(ctx, MaterializeInput{
		Proof:      proof,
		PropertyID: in.PropertyID,
		RoomID:     in.RoomID,
		Requester:  requester,
	})
	if err != nil {
		if errs.Is(err, ErrStoreUnavailable) {
			slog.Error("payment captured but booking not yet recorded",
				"payment_id", proof.PaymentID(),
				"error", err.Error())
			return &VerifyPaymentResult{PaymentID: proof.PaymentID(), Outcome: OutcomeBookingPending}, nil
		}
		return nil, err
	}

	span.SetAttributes(tracing.BookingID(out.BookingID.String()))
	return &VerifyPaymentResult{
		BookingID: &out.BookingID,
		PaymentID: proof.PaymentID(),
		Outcome:   out.Outcome,
	}, nil
}
