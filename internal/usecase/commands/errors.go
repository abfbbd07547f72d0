package commands

import (
	"coliving-payments/internal/infra"
	"coliving-payments/internal/pkg/errs"
)

// Sentinels are matched with errs.Is; concrete causes are marked with them.
var (
	ErrInvalidArgument     = errs.New("invalid argument")
	ErrUnauthenticated     = errs.New("signature not authentic")
	ErrPropertyNotFound    = errs.New("property not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrOutOfStock          = errs.New("room has no available beds")
	ErrUpstreamUnavailable = errs.ErrUpstreamUnavailable
	ErrStoreUnavailable    = errs.ErrStoreUnavailable
)

func invalid(err error) error {
	return errs.Mark(err, ErrInvalidArgument)
}

// storeFailure keeps the repository error as the cause and marks it as a
// transient store failure. Errors already carrying a use-case category pass
// through unchanged.
func storeFailure(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrInvalidArgument, ErrUnauthenticated, ErrPropertyNotFound,
		ErrRoomNotFound, ErrOutOfStock, ErrUpstreamUnavailable, ErrStoreUnavailable,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrStoreUnavailable)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
