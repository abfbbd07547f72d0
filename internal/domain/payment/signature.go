package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Proof is what the client submits after the gateway checkout completes.
type Proof struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerifiedProof can only be obtained from ProofVerifier.Verify, so holding
// one means the signature was checked.
type VerifiedProof struct {
	orderID   string
	paymentID string
}

func (p VerifiedProof) OrderID() string   { return p.orderID }
func (p VerifiedProof) PaymentID() string { return p.paymentID }

type ProofVerifier struct {
	secret []byte
}

func NewProofVerifier(secret string) *ProofVerifier {
	return &ProofVerifier{secret: []byte(secret)}
}

// Verify reports false for any mismatch, including an unconfigured secret.
func (v *ProofVerifier) Verify(p Proof) (VerifiedProof, bool) {
	if len(v.secret) == 0 || p.OrderID == "" || p.PaymentID == "" || p.Signature == "" {
		return VerifiedProof{}, false
	}
	expected := sign(v.secret, []byte(p.OrderID+"|"+p.PaymentID))
	if !hmac.Equal([]byte(expected), []byte(p.Signature)) {
		return VerifiedProof{}, false
	}
	return VerifiedProof{orderID: p.OrderID, paymentID: p.PaymentID}, true
}

// SignProof produces the signature the gateway attaches to a checkout result.
func SignProof(secret, orderID, paymentID string) string {
	return sign([]byte(secret), []byte(orderID+"|"+paymentID))
}

func sign(secret, msg []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}
