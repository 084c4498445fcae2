package payment

type CreatePaymentRequest struct {
	BookingID     int64   `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

type RefundRequestBody struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Reason    string `json:"reason,omitempty"`
}

type RefundApproveBody struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type MarkReadRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
}
