package domain

import "time"

type RatingSubject string

const (
	SubjectDriver    RatingSubject = "driver"
	SubjectTourGuide RatingSubject = "tourguide"
	SubjectTour      RatingSubject = "tour"
)

// Rating holds one score per (booking, subject type) pair; the pair
// uniqueness is enforced in the rating repository, not just prompted away
// in the UI.
type Rating struct {
	ID          int64         `json:"rating_id" gorm:"column:rating_id;primaryKey"`
	BookingID   int64         `json:"booking_id" validate:"required"`
	UserID      int64         `json:"user_id"`
	SubjectType RatingSubject `json:"subject_type" validate:"required,oneof=driver tourguide tour"`
	SubjectID   int64         `json:"subject_id" validate:"required"`
	Rating      int           `json:"rating" validate:"required,gte=1,lte=5"`
	Comment     string        `json:"comment,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
