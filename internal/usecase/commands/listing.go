package commands

import (
	"context"

	"coliving-payments/internal/domain/booking"
	"coliving-payments/internal/domain/room"
	"coliving-payments/internal/pkg/errs"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

// listing is the priced target of a booking: a property, optionally narrowed
// to one of its rooms.
type listing struct {
	property *shared.PropertySnapshot
	room     *shared.RoomSnapshot
	price    booking.Money
}

func (l listing) inventory() (room.Inventory, bool) {
	if l.room == nil {
		return room.Inventory{}, false
	}
	inv, err := room.NewInventory(l.room.TotalBeds, l.room.AvailableBeds)
	if err != nil {
		return room.Inventory{}, false
	}
	return inv, true
}

// resolveListing prices a booking from the room when one is given and has a
// price, otherwise from the property.
func resolveListing(ctx context.Context, reads shared.CommandReads, propertyID uuid.UUID, roomID *uuid.UUID) (listing, error) {
	prop, err := reads.PropertyByID(ctx, propertyID)
	if err != nil {
		if isNotFound(err) {
			return listing{}, errs.Mark(err, ErrPropertyNotFound)
		}
		return listing{}, storeFailure(err)
	}
	l := listing{property: prop}

	if roomID != nil {
		rm, err := reads.RoomByID(ctx, *roomID)
		if err != nil {
			if isNotFound(err) {
				return listing{}, errs.Mark(err, ErrRoomNotFound)
			}
			return listing{}, storeFailure(err)
		}
		if rm.PropertyID != prop.ID {
			return listing{}, errs.Wrapf(ErrRoomNotFound, "room %s is not in property %s", rm.ID, prop.ID)
		}
		l.room = rm
	}

	minor := prop.PriceMinor
	if l.room != nil && l.room.PriceMinor > 0 {
		minor = l.room.PriceMinor
	}
	price, err := booking.NewMoney(minor)
	if err != nil || price.IsZero() {
		return listing{}, errs.Wrapf(ErrPropertyNotFound, "listing %s has no price", prop.ID)
	}
	l.price = price
	return l, nil
}
