package payment

import (
	"context"

	"tourbook/internal/domain"
)

type PaymentRepository interface {
	CreateCompleted(ctx context.Context, p *domain.Payment) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	MarkRefundRequested(ctx context.Context, bookingID int64) (*domain.Payment, error)
	ApproveRefund(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

type bookingReader interface {
	IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.RefundNotification) error
	List(ctx context.Context, unreadOnly bool) ([]domain.RefundNotification, error)
	MarkRead(ctx context.Context, id int64) error
}
