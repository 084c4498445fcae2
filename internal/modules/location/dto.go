package location

// UpdateRequest reports the current position for a booking. Only the
// booking's assigned guide or driver may post one.
type UpdateRequest struct {
	BookingID int64   `json:"booking_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
