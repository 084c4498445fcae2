package changerequest

// CreateRequest files a change request against a booking. The current
// guide/driver are snapshotted server-side, never taken from the client.
type CreateRequest struct {
	BookingID   int64  `json:"booking_id" validate:"required"`
	RequestType string `json:"request_type" validate:"required,oneof=tour_guide driver both"`
	Reason      string `json:"reason" validate:"required,max=1000"`
}

// ProcessRequest resolves a pending change request. On approve, a
// replacement ID is required for every role the request names.
type ProcessRequest struct {
	Action         string `json:"action" validate:"required,oneof=approve reject"`
	NewTourGuideID *int64 `json:"new_tour_guide_id,omitempty"`
	NewDriverID    *int64 `json:"new_driver_id,omitempty"`
}
