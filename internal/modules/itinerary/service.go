package itinerary

import (
	"context"
	"errors"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/validator"
	"tourbook/internal/repository"
)

type Service struct {
	itineraries ItineraryRepository
	bookings    bookingReader
}

func NewService(itineraries ItineraryRepository, bookings bookingReader) *Service {
	return &Service{itineraries: itineraries, bookings: bookings}
}

// GetTourItinerary returns the template days for a tour, in day order.
func (s *Service) GetTourItinerary(ctx context.Context, tourID int64) ([]domain.TourItineraryDay, error) {
	return s.itineraries.TourDays(ctx, tourID)
}

// GetCustomItinerary returns the booking-owned itinerary days. Customers may
// only read their own booking; assigned staff and admins may read any they
// serve.
func (s *Service) GetCustomItinerary(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) ([]domain.CustomItineraryDay, error) {
	if err := s.authorize(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}
	return s.itineraries.CustomDays(ctx, bookingID)
}

// UpdateDay patches one day of a booking's itinerary. Only the booking owner
// or staff may edit; a missing day is reported, never silently created.
func (s *Service) UpdateDay(ctx context.Context, bookingID int64, dayNumber int, actorID int64, actorRole domain.UserRole, req UpdateDayRequest) ([]domain.CustomItineraryDay, error) {
	if dayNumber < 1 {
		return nil, ErrDayOutOfRange
	}
	if err := s.authorize(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	if err := s.itineraries.UpdateDay(ctx, bookingID, dayNumber, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayOutOfRange
		}
		return nil, err
	}
	return s.itineraries.CustomDays(ctx, bookingID)
}

// SubmitRequest files a free-form itinerary change request for staff review.
func (s *Service) SubmitRequest(ctx context.Context, actorID int64, actorRole domain.UserRole, req SubmitRequestRequest) (*domain.ItineraryRequest, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	if err := s.authorize(ctx, req.BookingID, actorID, actorRole); err != nil {
		return nil, err
	}

	ir := &domain.ItineraryRequest{
		BookingID:       req.BookingID,
		UserID:          actorID,
		DayNumber:       req.DayNumber,
		RequestedChange: req.RequestedChange,
		Status:          domain.ItineraryRequestPending,
	}
	if err := s.itineraries.CreateRequest(ctx, ir); err != nil {
		return nil, err
	}
	return ir, nil
}

// ListRequests returns a booking's itinerary requests, newest first.
func (s *Service) ListRequests(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) ([]domain.ItineraryRequest, error) {
	if err := s.authorize(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}
	return s.itineraries.ListRequests(ctx, bookingID)
}

// authorize grants access to the booking owner, the currently assigned guide
// or driver, and admins/employees.
func (s *Service) authorize(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) error {
	if actorRole == domain.RoleAdmin || actorRole == domain.RoleEmployee {
		return nil
	}

	owned, err := s.bookings.IsOwnedByUser(ctx, bookingID, actorID)
	if err != nil {
		return err
	}
	if owned {
		return nil
	}

	guideID, driverID, err := s.bookings.AssignedStaff(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingGone
		}
		return err
	}
	if (guideID != nil && *guideID == actorID) || (driverID != nil && *driverID == actorID) {
		return nil
	}
	return ErrForbidden
}
