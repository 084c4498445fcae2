package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is one-to-one with Booking. A refund is a status transition on the
// same row, never a second row.
type Payment struct {
	ID            int64         `json:"payment_id" gorm:"column:payment_id;primaryKey"`
	BookingID     int64         `json:"booking_id" gorm:"uniqueIndex" validate:"required"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	RefundRequest bool          `json:"refund_request"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
