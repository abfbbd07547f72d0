package readstore

import (
	"context"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/pgconv"
	"coliving-payments/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
}

type BookingViewStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingViewStore(queries BookingViewQueries, db sqlc.DBTX) *BookingViewStore {
	return &BookingViewStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingViewStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	bv := &queries.BookingView{
		ID:               row.ID,
		GatewayPaymentID: row.GatewayPaymentID,
		GatewayOrderID:   row.GatewayOrderID,
		PropertyID:       row.PropertyID,
		PropertyName:     row.PropertyName,
		RoomID:           pgconv.UUIDPtrFromPgtype(row.RoomID),
		UserID:           pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:        row.GuestName,
		GuestEmail:       row.GuestEmail,
		GuestPhone:       row.GuestPhone,
		PaymentStatus:    row.PaymentStatus,
		BookingStatus:    row.BookingStatus,
		TotalAmount:      row.TotalAmountMinor,
		AmountPaid:       row.AmountPaidMinor,
		AmountDue:        row.AmountDueMinor,
		InventoryHeld:    row.InventoryHeld,
		BookingDate:      pgconv.TimeFromPgtype(row.BookingDate),
		PaymentDate:      pgconv.TimePtrFromPgtype(row.PaymentDate),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.RoomName.Valid {
		name := row.RoomName.String
		bv.RoomName = &name
	}
	return bv, nil
}
