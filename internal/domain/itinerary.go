package domain

import "time"

// TourItineraryDay is a template day attached to a tour. On payment
// completion the template is copied into booking-owned CustomItineraryDay
// rows, renumbered 1..N by position.
type TourItineraryDay struct {
	ID          int64  `json:"itinerary_id" gorm:"column:itinerary_id;primaryKey"`
	TourID      int64  `json:"tour_id"`
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

func (TourItineraryDay) TableName() string { return "itinerary" }

type CustomItineraryDay struct {
	ID          int64     `json:"custom_itinerary_id" gorm:"column:custom_itinerary_id;primaryKey"`
	BookingID   int64     `json:"booking_id"`
	DayNumber   int       `json:"day_number"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CustomItineraryDay) TableName() string { return "custom_itinerary" }

type ItineraryRequestStatus string

const (
	ItineraryRequestPending  ItineraryRequestStatus = "pending"
	ItineraryRequestApproved ItineraryRequestStatus = "approved"
	ItineraryRequestRejected ItineraryRequestStatus = "rejected"
)

// ItineraryRequest is a customer's free-form modification request against a
// booking itinerary, reviewed by staff.
type ItineraryRequest struct {
	ID              int64                  `json:"itinerary_request_id" gorm:"column:itinerary_request_id;primaryKey"`
	BookingID       int64                  `json:"booking_id" validate:"required"`
	UserID          int64                  `json:"user_id"`
	DayNumber       *int                   `json:"day_number,omitempty"`
	RequestedChange string                 `json:"requested_change" validate:"required"`
	Status          ItineraryRequestStatus `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
}

func (ItineraryRequest) TableName() string { return "itinerary_requests" }
