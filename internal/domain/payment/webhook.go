package payment

import (
	"crypto/hmac"
	"errors"
)

var (
	ErrMissingSignature  = errors.New("webhook signature header missing")
	ErrSignatureMismatch = errors.New("webhook signature mismatch")
)

// AuthenticatedPayload wraps a webhook body whose signature has been checked.
// ParseEvent accepts nothing else.
type AuthenticatedPayload struct {
	body []byte
}

type WebhookAuthenticator struct {
	secret []byte
}

func NewWebhookAuthenticator(secret string) *WebhookAuthenticator {
	return &WebhookAuthenticator{secret: []byte(secret)}
}

func (a *WebhookAuthenticator) Authenticate(body []byte, signature string) (AuthenticatedPayload, error) {
	if signature == "" {
		return AuthenticatedPayload{}, ErrMissingSignature
	}
	if len(a.secret) == 0 {
		return AuthenticatedPayload{}, ErrSignatureMismatch
	}
	expected := sign(a.secret, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return AuthenticatedPayload{}, ErrSignatureMismatch
	}
	return AuthenticatedPayload{body: body}, nil
}

// SignWebhook computes the header value the gateway sends for body.
func SignWebhook(secret string, body []byte) string {
	return sign([]byte(secret), body)
}
