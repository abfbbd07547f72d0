package response

import (
	"coliving-payments/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	OrderID string `json:"order_id"`
	// AmountMinor is in minor units, the value the checkout widget expects.
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
}

func FromIssueOrderResult(r *commands.IssueOrderResult) *OrderResponse {
	res := &OrderResponse{}
	_ = copier.Copy(res, r)
	return res
}
