//go:build unit

package payment_test

import (
	"testing"

	"coliving-payments/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keySecret     = "rzp_test_secret"
	webhookSecret = "whsec_distinct"
)

func TestProofVerifier(t *testing.T) {
	v := payment.NewProofVerifier(keySecret)
	valid := payment.Proof{
		OrderID:   "order_9A33XWu170gUtm",
		PaymentID: "pay_29QQoUBi66xm2f",
		Signature: payment.SignProof(keySecret, "order_9A33XWu170gUtm", "pay_29QQoUBi66xm2f"),
	}

	t.Run("valid signature yields a verified proof", func(t *testing.T) {
		proof, ok := v.Verify(valid)
		require.True(t, ok)
		assert.Equal(t, valid.OrderID, proof.OrderID())
		assert.Equal(t, valid.PaymentID, proof.PaymentID())
	})

	cases := []struct {
		name   string
		mutate func(p *payment.Proof)
	}{
		{"swapped ids", func(p *payment.Proof) { p.OrderID, p.PaymentID = p.PaymentID, p.OrderID }},
		{"other payment id", func(p *payment.Proof) { p.PaymentID = "pay_other" }},
		{"uppercase hex", func(p *payment.Proof) { p.Signature = "A" + p.Signature[1:] }},
		{"truncated", func(p *payment.Proof) { p.Signature = p.Signature[:10] }},
		{"empty signature", func(p *payment.Proof) { p.Signature = "" }},
		{"empty order id", func(p *payment.Proof) { p.OrderID = "" }},
		{"signed with webhook secret", func(p *payment.Proof) {
			p.Signature = payment.SignProof(webhookSecret, p.OrderID, p.PaymentID)
		}},
	}
	for _, tc := range cases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			_, ok := v.Verify(p)
			assert.False(t, ok)
		})
	}

	t.Run("unconfigured secret rejects everything", func(t *testing.T) {
		unsigned := payment.Proof{OrderID: "o", PaymentID: "p", Signature: payment.SignProof("", "o", "p")}
		_, ok := payment.NewProofVerifier("").Verify(unsigned)
		assert.False(t, ok)
	})
}

func TestSignProof_KnownVector(t *testing.T) {
	// HMAC-SHA256("secret", "order_1|pay_1"), hex encoded
	got := payment.SignProof("secret", "order_1", "pay_1")
	assert.Len(t, got, 64)
	assert.Equal(t, got, payment.SignProof("secret", "order_1", "pay_1"))
	assert.NotEqual(t, got, payment.SignProof("secret", "order_1", "pay_2"))
}

func TestWebhookAuthenticator(t *testing.T) {
	a := payment.NewWebhookAuthenticator(webhookSecret)
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

	_, err := a.Authenticate(body, payment.SignWebhook(webhookSecret, body))
	require.NoError(t, err)

	_, err = a.Authenticate(body, "")
	assert.ErrorIs(t, err, payment.ErrMissingSignature)

	_, err = a.Authenticate(body, payment.SignWebhook(keySecret, body))
	assert.ErrorIs(t, err, payment.ErrSignatureMismatch)

	tampered := append([]byte{}, body...)
	tampered[len(tampered)-3] = 'X'
	_, err = a.Authenticate(tampered, payment.SignWebhook(webhookSecret, body))
	assert.ErrorIs(t, err, payment.ErrSignatureMismatch)

	_, err = payment.NewWebhookAuthenticator("").Authenticate(body, payment.SignWebhook("", body))
	assert.ErrorIs(t, err, payment.ErrSignatureMismatch)
}

func authenticated(t *testing.T, body string) payment.AuthenticatedPayload {
	t.Helper()
	a := payment.NewWebhookAuthenticator(webhookSecret)
	p, err := a.Authenticate([]byte(body), payment.SignWebhook(webhookSecret, []byte(body)))
	require.NoError(t, err)
	return p
}

func TestParseEvent(t *testing.T) {
	cases := []struct {
		name string
		body string
		want payment.Event
	}{
		{
			name: "payment.authorized",
			body: `{"event":"payment.authorized","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","amount":200000}}}}`,
			want: payment.PaymentAuthorized{PaymentID: "pay_1", OrderID: "order_1"},
		},
		{
			name: "payment.captured",
			body: `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","amount":200000}}}}`,
			want: payment.PaymentCaptured{PaymentID: "pay_1", OrderID: "order_1", Amount: 200000},
		},
		{
			name: "payment.failed",
			body: `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","error_description":"card declined"}}}}`,
			want: payment.PaymentFailed{PaymentID: "pay_1", OrderID: "order_1", Reason: "card declined"},
		},
		{
			name: "order.paid prefers the order entity",
			body: `{"event":"order.paid","payload":{"order":{"entity":{"id":"order_1"}},"payment":{"entity":{"id":"pay_1","order_id":"order_x"}}}}`,
			want: payment.OrderPaid{OrderID: "order_1", PaymentID: "pay_1"},
		},
		{
			name: "order.paid falls back to the payment's order id",
			body: `{"event":"order.paid","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`,
			want: payment.OrderPaid{OrderID: "order_1", PaymentID: "pay_1"},
		},
		{
			name: "unknown events are unmatched",
			body: `{"event":"refund.created","payload":{}}`,
			want: payment.Unmatched{EventName: "refund.created"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := payment.ParseEvent(authenticated(t, tc.body))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, ev.Event()); diff != "" {
				t.Errorf("event mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEvent_Malformed(t *testing.T) {
	bodies := map[string]string{
		"not json":                 `{"event":`,
		"no event name":            `{"payload":{}}`,
		"captured without id":      `{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_1"}}}}`,
		"failed without payload":   `{"event":"payment.failed"}`,
		"order.paid without order": `{"event":"order.paid","payload":{}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := payment.ParseEvent(authenticated(t, body))
			assert.ErrorIs(t, err, payment.ErrMalformedEvent)
		})
	}
}
