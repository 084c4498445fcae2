package payment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	payments PaymentRepository
	bookings bookingReader
	notifs   NotificationRepository
}

func NewService(payments PaymentRepository, bookings bookingReader, notifs NotificationRepository) *Service {
	return &Service{payments: payments, bookings: bookings, notifs: notifs}
}

// CreatePayment records the payment, confirms the booking and materializes
// the itinerary in one repository transaction. A second payment for the same
// booking fails with ErrPaymentExists and leaves everything unchanged.
func (s *Service) CreatePayment(ctx context.Context, actorID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	owned, err := s.bookings.IsOwnedByUser(ctx, req.BookingID, actorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}

	p := &domain.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Method:        req.PaymentMethod,
		TransactionID: req.TransactionID,
	}
	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}

	if err := s.payments.CreateCompleted(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, repository.ErrPaymentExists):
			return nil, ErrPaymentExists
		}
		return nil, err
	}
	return p, nil
}

// RequestRefund flags the payment and drops a row into the employee inbox.
// The notification is best-effort: the flag is the source of truth.
func (s *Service) RequestRefund(ctx context.Context, actorID int64, req RefundRequestBody) (*domain.Payment, error) {
	owned, err := s.bookings.IsOwnedByUser(ctx, req.BookingID, actorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}

	p, err := s.payments.MarkRefundRequested(ctx, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrPaymentNotFound
		case errors.Is(err, repository.ErrRefundConflict):
			return nil, ErrRefundConflict
		}
		return nil, err
	}

	msg := fmt.Sprintf("Refund requested for booking #%d", req.BookingID)
	if req.Reason != "" {
		msg += ": " + req.Reason
	}
	if err := s.notifs.Create(ctx, &domain.RefundNotification{
		BookingID: req.BookingID,
		PaymentID: p.ID,
		Message:   msg,
	}); err != nil {
		log.Printf("refund notification create failed booking_id=%d err=%v", req.BookingID, err)
	}

	return p, nil
}

// ApproveRefund is a ledger transition: payment to refunded, booking to
// cancelled. No gateway call is made. Back-office only: guides and drivers
// hold staff tokens but may not move money.
func (s *Service) ApproveRefund(ctx context.Context, actorRole domain.UserRole, req RefundApproveBody) (*domain.Payment, error) {
	if actorRole != domain.RoleAdmin && actorRole != domain.RoleEmployee {
		return nil, ErrForbidden
	}
	p, err := s.payments.ApproveRefund(ctx, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrPaymentNotFound
		case errors.Is(err, repository.ErrRefundConflict):
			return nil, ErrRefundConflict
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.RefundNotification, error) {
	return s.notifs.List(ctx, unreadOnly)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id int64) error {
	if err := s.notifs.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
