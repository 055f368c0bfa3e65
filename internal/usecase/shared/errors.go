package shared

import "salon-booking/internal/pkg/errs"

// Failure taxonomy shared by the command and query sides. Handlers map
// these to HTTP statuses; lower layers mark their causes onto them.
var (
	ErrInvalidInput = errs.New("invalid input")
	ErrNotFound     = errs.New("not found")
	ErrForbidden    = errs.New("forbidden")
	ErrConflict     = errs.New("slot conflict")
	ErrInvalidState = errs.New("invalid status transition")
	ErrUnavailable  = errs.New("dependency unavailable")
)
