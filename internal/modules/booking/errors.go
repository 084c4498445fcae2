package booking

import "errors"

var (
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrTourUnavailable    = errors.New("tour is not available")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrDriverUnavailable  = errors.New("driver has an overlapping booking")
	ErrNotFound           = errors.New("booking not found")
	ErrForbidden          = errors.New("not allowed for this booking")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
