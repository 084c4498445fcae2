package rating

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("access denied")
	ErrNotCompleted = errors.New("booking is not completed")
	ErrAlreadyRated = errors.New("subject already rated for this booking")
	ErrBookingGone  = errors.New("booking not found")
)
