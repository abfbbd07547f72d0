package response

import (
	"coliving-payments/internal/usecase/commands"
)

type VerifyPaymentResponse struct {
	BookingID *string `json:"booking_id,omitempty"`
	PaymentID string  `json:"payment_id"`
	Outcome   string  `json:"outcome"`
}

func FromVerifyPaymentResult(r *commands.VerifyPaymentResult) *VerifyPaymentResponse {
	res := &VerifyPaymentResponse{PaymentID: r.PaymentID, Outcome: string(r.Outcome)}
	if r.BookingID != nil {
		id := r.BookingID.String()
		res.BookingID = &id
	}
	return res
}

type WebhookResponse struct {
	Status string `json:"status"`
	Event  string `json:"event,omitempty"`
}

func FromWebhookResult(r *commands.WebhookResult) *WebhookResponse {
	return &WebhookResponse{Status: string(r.Outcome), Event: r.Event}
}

type SweepResponse struct {
	Scanned  int `json:"scanned"`
	Restored int `json:"restored"`
	Failed   int `json:"failed"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{Scanned: r.Scanned, Restored: r.Restored, Failed: r.Failed}
}
