package room

import "errors"

var (
	ErrOutOfStock       = errors.New("no beds available in room")
	ErrInvalidInventory = errors.New("available beds must be between 0 and total beds")
)

// Inventory is the bed counter of a room. 0 <= available <= total always holds.
type Inventory struct {
	total     int32
	available int32
}

func NewInventory(total, available int32) (Inventory, error) {
	if total < 0 || available < 0 || available > total {
		return Inventory{}, ErrInvalidInventory
	}
	return Inventory{total: total, available: available}, nil
}

func (i Inventory) Decrement() (Inventory, error) {
	if i.available == 0 {
		return i, ErrOutOfStock
	}
	return Inventory{total: i.total, available: i.available - 1}, nil
}

// Restore returns one bed, never exceeding total.
func (i Inventory) Restore() Inventory {
	if i.available >= i.total {
		return i
	}
	return Inventory{total: i.total, available: i.available + 1}
}

func (i Inventory) HasVacancy() bool {
	return i.available > 0
}

func (i Inventory) Total() int32     { return i.total }
func (i Inventory) Available() int32 { return i.available }
