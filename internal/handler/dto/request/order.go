package request

import (
	"coliving-payments/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	RoomID     *uuid.UUID `json:"room_id"`
	// Amount in major currency units, e.g. 2000.00 for ₹2,000.
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Name   string  `json:"name" binding:"required,max=100"`
	Email  string  `json:"email" binding:"required,email,max=254"`
	Phone  string  `json:"phone" binding:"required,phone"`
}

func (r *CreateOrderRequest) ToInput(userID *uuid.UUID) commands.IssueOrderInput {
	return commands.IssueOrderInput{
		PropertyID: r.PropertyID,
		RoomID:     r.RoomID,
		Amount:     r.Amount,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		UserID:     userID,
	}
}
