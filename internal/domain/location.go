package domain

import "time"

// LiveLocation is the latest reported position for a booking. Read access is
// derived from the booking's current guide/driver columns on every request,
// so a replaced party is denied on its next poll without any ACL bookkeeping.
type LiveLocation struct {
	ID        int64     `json:"location_id" gorm:"column:location_id;primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"uniqueIndex"`
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	UpdatedBy int64     `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LiveLocation) TableName() string { return "live_locations" }
