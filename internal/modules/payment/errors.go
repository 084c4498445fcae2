package payment

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPaymentExists        = errors.New("payment already exists for this booking")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrRefundConflict       = errors.New("payment is not eligible for refund")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("not allowed for this booking")
)
