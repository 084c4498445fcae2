package domain

import "time"

type ChangeRequestType string

const (
	ChangeTourGuide ChangeRequestType = "tour_guide"
	ChangeDriver    ChangeRequestType = "driver"
	ChangeBoth      ChangeRequestType = "both"
)

type ChangeRequestStatus string

const (
	RequestPending   ChangeRequestStatus = "pending"
	RequestApproved  ChangeRequestStatus = "approved"
	RequestRejected  ChangeRequestStatus = "rejected"
	RequestCompleted ChangeRequestStatus = "completed"
)

// ChangeRequest asks to replace a booking's guide and/or driver. Transitions
// run forward only: pending -> approved/rejected -> completed. The current_*
// snapshot is the only record of the replaced party.
type ChangeRequest struct {
	ID                 int64               `json:"request_id" gorm:"column:request_id;primaryKey"`
	BookingID          int64               `json:"booking_id" validate:"required"`
	UserID             int64               `json:"user_id"`
	RequestType        ChangeRequestType   `json:"request_type" validate:"required,oneof=tour_guide driver both"`
	CurrentTourGuideID *int64              `json:"current_tour_guide_id,omitempty"`
	CurrentDriverID    *int64              `json:"current_driver_id,omitempty"`
	NewTourGuideID     *int64              `json:"new_tour_guide_id,omitempty"`
	NewDriverID        *int64              `json:"new_driver_id,omitempty"`
	Reason             string              `json:"reason"`
	Status             ChangeRequestStatus `json:"status"`
	ProcessedBy        *int64              `json:"processed_by,omitempty"`
	ProcessedAt        *time.Time          `json:"processed_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// WantsGuide reports whether approval must name a replacement guide.
func (r *ChangeRequest) WantsGuide() bool {
	return r.RequestType == ChangeTourGuide || r.RequestType == ChangeBoth
}

// WantsDriver reports whether approval must name a replacement driver.
func (r *ChangeRequest) WantsDriver() bool {
	return r.RequestType == ChangeDriver || r.RequestType == ChangeBoth
}
