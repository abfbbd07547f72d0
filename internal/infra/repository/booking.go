package repository

import (
	"context"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/infra"
	"coliving-payments/internal/infra/repository/converter"
	sqlc "coliving-payments/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, gatewayOrderID string) (sqlc.Bookings, error)
	GetBookingByPaymentIDForUpdate(ctx context.Context, db sqlc.DBTX, gatewayPaymentID string) (sqlc.Bookings, error)
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByPaymentIDForUpdate(ctx context.Context, gatewayPaymentID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentIDForUpdate(ctx, r.db, gatewayPaymentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by payment id", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) FindByOrderIDForUpdate(ctx context.Context, gatewayOrderID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByOrderIDForUpdate(ctx, r.db, gatewayOrderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by order id", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) UpdateState(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.UpdateBookingState(ctx, r.db, converter.BookingToStateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	return nil
}

func (r *BookingRepository) toDomain(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is inconsistent", err, infra.KindDBFailure)
	}
	return b, nil
}
