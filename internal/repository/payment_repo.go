package repository

import (
	"context"
	"errors"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) DB() *gorm.DB { return r.db }

// CreateCompleted records a payment, confirms the booking and materializes
// the tour itinerary, all in one transaction. The booking row is locked for
// the duration so two simultaneous payments for the same booking cannot both
// pass the one-payment check; the unique index on payments.booking_id backs
// the check at the schema level.
func (r *PaymentRepository) CreateCompleted(ctx context.Context, p *domain.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking domain.Booking
		if err := lockForUpdate(tx).First(&booking, "booking_id = ?", p.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cnt int64
		if err := tx.Model(&domain.Payment{}).Where("booking_id = ?", p.BookingID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrPaymentExists
		}

		p.Status = domain.PaymentCompleted
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Booking{}).
			Where("booking_id = ?", booking.ID).
			Update("status", domain.BookingConfirmed).Error; err != nil {
			return err
		}

		if booking.TourID != nil {
			if _, err := copyTourDays(tx, booking.ID, *booking.TourID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateErr(err) {
			return ErrPaymentExists
		}
		return err
	}
	return nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// MarkRefundRequested flags the payment for refund. Only a completed payment
// without a pending request is eligible.
func (r *PaymentRepository) MarkRefundRequested(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&p, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Status != domain.PaymentCompleted || p.RefundRequest {
			return ErrRefundConflict
		}
		p.RefundRequest = true
		return tx.Model(&domain.Payment{}).
			Where("payment_id = ?", p.ID).
			Update("refund_request", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ApproveRefund flips the payment to refunded and cancels the booking. No
// money moves; this is a ledger flag, not a gateway call.
func (r *PaymentRepository) ApproveRefund(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&p, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Status != domain.PaymentCompleted || !p.RefundRequest {
			return ErrRefundConflict
		}

		p.Status = domain.PaymentRefunded
		if err := tx.Model(&domain.Payment{}).Where("payment_id = ?", p.ID).Updates(map[string]any{
			"status":         domain.PaymentRefunded,
			"refund_request": false,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Booking{}).
			Where("booking_id = ?", bookingID).
			Update("status", domain.BookingCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
