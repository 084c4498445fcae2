package location

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrForbidden   = errors.New("access denied")
	ErrNotFound    = errors.New("no location reported yet")
	ErrBookingGone = errors.New("booking not found")
)
