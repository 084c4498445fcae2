package location

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/validator"
	"tourbook/internal/repository"
)

type Service struct {
	locations LocationRepository
	bookings  bookingReader
	hub       *Hub
}

func NewService(locations LocationRepository, bookings bookingReader, hub *Hub) *Service {
	return &Service{locations: locations, bookings: bookings, hub: hub}
}

// Update stores the latest position and pushes it to websocket subscribers.
// Only the booking's current guide or driver may report.
func (s *Service) Update(ctx context.Context, actorID int64, req UpdateRequest) (*domain.LiveLocation, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	assigned, err := s.isAssigned(ctx, req.BookingID, actorID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrForbidden
	}

	loc := &domain.LiveLocation{
		BookingID: req.BookingID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		UpdatedBy: actorID,
		UpdatedAt: time.Now(),
	}
	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, err
	}

	s.hub.Broadcast(req.BookingID, loc)
	return loc, nil
}

// Get returns the latest reported position. Readable by the booking owner
// and its currently assigned staff.
func (s *Service) Get(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) (*domain.LiveLocation, error) {
	if err := s.Authorize(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}

	loc, err := s.locations.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

// Authorize grants read access to the owner, the assigned guide/driver and
// admins/employees. The websocket handler reuses it before subscribing.
func (s *Service) Authorize(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) error {
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

	assigned, err := s.isAssigned(ctx, bookingID, actorID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrForbidden
	}
	return nil
}

func (s *Service) isAssigned(ctx context.Context, bookingID, actorID int64) (bool, error) {
	guideID, driverID, err := s.bookings.AssignedStaff(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrBookingGone
		}
		return false, err
	}
	if guideID != nil && *guideID == actorID {
		return true, nil
	}
	if driverID != nil && *driverID == actorID {
		return true, nil
	}
	return false, nil
}
