package itinerary

// UpdateDayRequest patches a single day of a booking's itinerary. Nil
// fields are left untouched.
type UpdateDayRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// SubmitRequestRequest is a free-form change request against a booking's
// itinerary, reviewed by staff.
type SubmitRequestRequest struct {
	BookingID       int64  `json:"booking_id" validate:"required"`
	DayNumber       *int   `json:"day_number,omitempty" validate:"omitempty,gte=1"`
	RequestedChange string `json:"requested_change" validate:"required,max=2000"`
}
