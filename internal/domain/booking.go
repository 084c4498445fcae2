package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID             int64         `json:"booking_id" gorm:"column:booking_id;primaryKey"`
	UserID         int64         `json:"user_id" validate:"required"`
	TourID         *int64        `json:"tour_id,omitempty"`
	VehicleID      *int64        `json:"vehicle_id,omitempty"`
	DriverID       *int64        `json:"driver_id,omitempty"`
	TourGuideID    *int64        `json:"tour_guide_id,omitempty"`
	StartDate      time.Time     `json:"start_date" validate:"required"`
	EndDate        time.Time     `json:"end_date" validate:"required"`
	TotalPrice     float64       `json:"total_price" validate:"gte=0"`
	Status         BookingStatus `json:"status"`
	NumberOfPeople int           `json:"number_of_people" validate:"gte=1"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Overlaps reports whether the booking occupies any day of [start, end].
// Both range ends are inclusive, matching the availability queries.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// BlocksResources reports whether the booking counts against driver and
// vehicle availability.
func (b *Booking) BlocksResources() bool {
	return b.Status == BookingConfirmed || b.Status == BookingInProgress
}
