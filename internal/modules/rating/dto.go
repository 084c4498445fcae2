package rating

// SubmitRequest scores one subject (driver, tourguide or tour) of a
// completed booking. The subject ID is resolved server-side from the
// booking, not trusted from the client.
type SubmitRequest struct {
	BookingID   int64  `json:"booking_id" validate:"required"`
	SubjectType string `json:"subject_type" validate:"required,oneof=driver tourguide tour"`
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}

// SubjectAverageResponse is the aggregate score for one subject.
type SubjectAverageResponse struct {
	SubjectType string  `json:"subject_type"`
	SubjectID   int64   `json:"subject_id"`
	Average     float64 `json:"average"`
	Count       int64   `json:"count"`
}
