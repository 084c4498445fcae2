package booking

import (
	"context"
	"errors"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// CreateBooking validates the date range, then delegates the availability
// checks and the insert to one repository transaction so the checks hold at
// insert time, not just at check time.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	b := &domain.Booking{
		UserID:         userID,
		TourID:         req.TourID,
		VehicleID:      req.VehicleID,
		DriverID:       req.DriverID,
		TourGuideID:    req.TourGuideID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TotalPrice:     req.TotalPrice,
		Status:         domain.BookingPending,
		NumberOfPeople: req.NumberOfPeople,
	}

	var patch *repository.ContactPatch
	if req.FirstName != "" || req.LastName != "" || req.Phone != "" {
		patch = &repository.ContactPatch{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		}
	}

	if err := s.bookings.Create(ctx, b, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrTourUnavailable):
			return nil, ErrTourUnavailable
		case errors.Is(err, repository.ErrVehicleUnavailable):
			return nil, ErrVehicleUnavailable
		case errors.Is(err, repository.ErrDriverConflict):
			return nil, ErrDriverUnavailable
		}
		return nil, err
	}
	return b, nil
}

// GetDetail returns the joined booking view. Customers may only read their
// own bookings; staff may read any.
func (s *Service) GetDetail(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) (*repository.DetailRow, error) {
	if !actorRole.IsStaff() {
		owned, err := s.bookings.IsOwnedByUser(ctx, bookingID, actorID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrForbidden
		}
	}

	row, err := s.bookings.GetDetail(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *Service) ListForActor(ctx context.Context, actorID int64, actorRole domain.UserRole, limit, offset int) ([]domain.Booking, error) {
	if actorRole.IsStaff() {
		if limit <= 0 || limit > 100 {
			limit = 50
		}
		return s.bookings.ListAll(ctx, limit, offset)
	}
	return s.bookings.ListByUser(ctx, actorID)
}

// validTransitions holds the forward-only booking lifecycle. Cancellation is
// reachable from any live state; terminal states never change.
var validTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:    {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed:  {domain.BookingInProgress, domain.BookingCancelled},
	domain.BookingInProgress: {domain.BookingCompleted, domain.BookingCancelled},
}

func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, actorRole domain.UserRole, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !actorRole.IsStaff() {
		return nil, ErrForbidden
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed := false
	for _, next := range validTransitions[b.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus
	return b, nil
}

// CheckAssignment reports whether the user is the booking's current guide or
// driver. A party replaced through a change request stops matching here and
// loses live-location access on its next poll.
func (s *Service) CheckAssignment(ctx context.Context, bookingID, userID int64) (bool, error) {
	guideID, driverID, err := s.bookings.AssignedStaff(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if guideID != nil && *guideID == userID {
		return true, nil
	}
	if driverID != nil && *driverID == userID {
		return true, nil
	}
	return false, nil
}
