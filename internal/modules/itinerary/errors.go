package itinerary

import "errors"

var (
	ErrNotFound      = errors.New("itinerary not found")
	ErrBookingGone   = errors.New("booking not found")
	ErrForbidden     = errors.New("access denied")
	ErrValidation    = errors.New("validation failed")
	ErrDayOutOfRange = errors.New("day number outside itinerary")
)
