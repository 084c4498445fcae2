package booking

import "time"

type CreateBookingRequest struct {
	TourID         *int64    `json:"tour_id,omitempty"`
	VehicleID      *int64    `json:"vehicle_id,omitempty"`
	DriverID       *int64    `json:"driver_id,omitempty"`
	TourGuideID    *int64    `json:"tour_guide_id,omitempty"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	TotalPrice     float64   `json:"total_price" binding:"gte=0"`
	NumberOfPeople int       `json:"number_of_people" binding:"required,gte=1"`

	// optional contact refresh applied to the user row before insert
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed in-progress completed cancelled"`
}

type CheckAssignmentResponse struct {
	BookingID int64 `json:"booking_id"`
	Assigned  bool  `json:"assigned"`
}
