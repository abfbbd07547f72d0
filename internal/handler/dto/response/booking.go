package response

import (
	"time"

	"coliving-payments/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               string  `json:"id"`
	GatewayPaymentID string  `json:"gateway_payment_id"`
	GatewayOrderID   string  `json:"gateway_order_id"`
	PropertyID       string  `json:"property_id"`
	PropertyName     string  `json:"property_name"`
	RoomID           *string `json:"room_id,omitempty" copier:"-"`
	RoomName         *string `json:"room_name,omitempty"`
	GuestName        string  `json:"guest_name"`
	GuestEmail       string  `json:"guest_email"`
	GuestPhone       string  `json:"guest_phone"`
	PaymentStatus    string  `json:"payment_status"`
	BookingStatus    string  `json:"booking_status"`
	// amounts in minor units
	TotalAmount int64  `json:"total_amount"`
	AmountPaid  int64  `json:"amount_paid"`
	AmountDue   int64  `json:"amount_due"`
	BookingDate int64  `json:"booking_date"`
	PaymentDate *int64 `json:"payment_date,omitempty" copier:"-"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

var viewConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.CopyWithOption(res, v, viewConverters)
	if v.RoomID != nil {
		id := v.RoomID.String()
		res.RoomID = &id
	}
	if v.PaymentDate != nil {
		ts := v.PaymentDate.Unix()
		res.PaymentDate = &ts
	}
	return res
}
