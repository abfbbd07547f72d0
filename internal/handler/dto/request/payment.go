package request

import (
	"coliving-payments/internal/usecase/commands"

	"github.com/google/uuid"
)

// VerifyPaymentRequest carries the checkout widget's proof. Field names follow
// the gateway's callback payload.
type VerifyPaymentRequest struct {
	OrderID    string     `json:"razorpay_order_id" binding:"required,max=64"`
	PaymentID  string     `json:"razorpay_payment_id" binding:"required,max=64"`
	Signature  string     `json:"razorpay_signature" binding:"required,hexadecimal,len=64"`
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	RoomID     *uuid.UUID `json:"room_id"`
	Name       string     `json:"name" binding:"required,max=100"`
	Email      string     `json:"email" binding:"required,email,max=254"`
	Phone      string     `json:"phone" binding:"required,phone"`
}

func (r *VerifyPaymentRequest) ToInput(userID *uuid.UUID) commands.VerifyPaymentInput {
	return commands.VerifyPaymentInput{
		OrderID:    r.OrderID,
		PaymentID:  r.PaymentID,
		Signature:  r.Signature,
		PropertyID: r.PropertyID,
		RoomID:     r.RoomID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		UserID:     userID,
	}
}
