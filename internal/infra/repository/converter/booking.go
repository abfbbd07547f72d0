package converter

import (
	"coliving-payments/internal/domain/booking"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	r := b.Requester()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		GatewayPaymentID: b.GatewayPaymentID(),
		GatewayOrderID:   b.GatewayOrderID(),
		PropertyID:       b.PropertyID(),
		RoomID:           pgconv.UUIDPtrToPgtype(b.RoomID()),
		UserID:           pgconv.UUIDPtrToPgtype(r.UserID()),
		GuestName:        r.Name(),
		GuestEmail:       r.Email(),
		GuestPhone:       r.Phone(),
		PaymentStatus:    b.PaymentStatus().String(),
		BookingStatus:    b.Status().String(),
		TotalAmountMinor: b.Total().Minor(),
		AmountPaidMinor:  b.Paid().Minor(),
		AmountDueMinor:   b.Due().Minor(),
		InventoryHeld:    b.InventoryHeld(),
		BookingDate:      pgconv.TimeToPgtype(b.BookedAt()),
		PaymentDate:      pgconv.TimePtrToPgtype(b.PaidAt()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToStateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:            b.ID(),
		PaymentStatus: b.PaymentStatus().String(),
		BookingStatus: b.Status().String(),
		PaymentDate:   pgconv.TimePtrToPgtype(b.PaidAt()),
		InventoryHeld: b.InventoryHeld(),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	total, err := booking.NewMoney(row.TotalAmountMinor)
	if err != nil {
		return nil, err
	}
	paid, err := booking.NewMoney(row.AmountPaidMinor)
	if err != nil {
		return nil, err
	}
	due, err := booking.NewMoney(row.AmountDueMinor)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:               row.ID,
		GatewayPaymentID: row.GatewayPaymentID,
		GatewayOrderID:   row.GatewayOrderID,
		PropertyID:       row.PropertyID,
		RoomID:           pgconv.UUIDPtrFromPgtype(row.RoomID),
		Requester: booking.RestoreRequester(
			row.GuestName, row.GuestEmail, row.GuestPhone, pgconv.UUIDPtrFromPgtype(row.UserID),
		),
		PaymentStatus: booking.PaymentStatus(row.PaymentStatus),
		Status:        booking.Status(row.BookingStatus),
		Total:         total,
		Paid:          paid,
		Due:           due,
		InventoryHeld: row.InventoryHeld,
		BookedAt:      pgconv.TimeFromPgtype(row.BookingDate),
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaymentDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
