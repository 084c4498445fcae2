package changerequest

import "errors"

var (
	ErrNotFound           = errors.New("change request not found")
	ErrBookingGone        = errors.New("booking not found")
	ErrForbidden          = errors.New("access denied")
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyProcessed   = errors.New("change request already processed")
	ErrMissingReplacement = errors.New("approval must name a replacement for every requested role")
)
