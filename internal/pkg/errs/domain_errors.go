package errs

// Cross-layer sentinels. Usecases mark concrete failures with these so the
// HTTP layer can map them without importing infra.
var (
	ErrValidation          = New("validation failed")
	ErrNotFound            = New("not found")
	ErrUnauthorized        = New("unauthorized")
	ErrForbidden           = New("forbidden")
	ErrConflict            = New("conflict")
	ErrStoreUnavailable    = New("store unavailable")
	ErrUpstreamUnavailable = New("upstream unavailable")
)
