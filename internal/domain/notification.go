package domain

import "time"

// RefundNotification is an employee inbox row pointing at a booking whose
// payment has a pending refund request.
type RefundNotification struct {
	ID        int64     `json:"notification_id" gorm:"column:notification_id;primaryKey"`
	BookingID int64     `json:"booking_id"`
	PaymentID int64     `json:"payment_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefundNotification) TableName() string { return "refund_notifications" }
