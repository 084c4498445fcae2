package changerequest

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/validator"
	"tourbook/internal/repository"
)

type Service struct {
	requests ChangeRequestRepository
	bookings bookingReader
	staff    staffLister
}

func NewService(requests ChangeRequestRepository, bookings bookingReader, staff staffLister) *Service {
	return &Service{requests: requests, bookings: bookings, staff: staff}
}

// Create files a change request. Customers file against their own bookings;
// admins and employees may file on a customer's behalf, in which case the
// booking's owner stays the recorded requester. The booking's current
// guide/driver are read here and stored on the request, so the record of who
// was replaced survives later reassignment.
func (s *Service) Create(ctx context.Context, actorID int64, actorRole domain.UserRole, req CreateRequest) (*domain.ChangeRequest, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingGone
		}
		return nil, err
	}

	if actorRole != domain.RoleAdmin && actorRole != domain.RoleEmployee {
		owned, err := s.bookings.IsOwnedByUser(ctx, req.BookingID, actorID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrForbidden
		}
	}

	cr := &domain.ChangeRequest{
		BookingID:          req.BookingID,
		UserID:             b.UserID,
		RequestType:        domain.ChangeRequestType(req.RequestType),
		CurrentTourGuideID: b.TourGuideID,
		CurrentDriverID:    b.DriverID,
		Reason:             req.Reason,
		Status:             domain.RequestPending,
	}
	if err := s.requests.Create(ctx, cr); err != nil {
		return nil, err
	}
	return cr, nil
}

// ListForActor shows customers their own requests and staff the pending
// queue (or any status they filter on).
func (s *Service) ListForActor(ctx context.Context, actorID int64, actorRole domain.UserRole, status string) ([]domain.ChangeRequest, error) {
	if actorRole == domain.RoleAdmin || actorRole == domain.RoleEmployee {
		if status == "" {
			status = string(domain.RequestPending)
		}
		return s.requests.ListByStatus(ctx, domain.ChangeRequestStatus(status))
	}
	return s.requests.ListByUser(ctx, actorID)
}

// Process approves or rejects a pending request. Approval rewires the
// booking and the request row in one transaction; a replacement must be
// named for every role the request covers.
func (s *Service) Process(ctx context.Context, requestID, processorID int64, actorRole domain.UserRole, req ProcessRequest) (*domain.ChangeRequest, error) {
	if actorRole != domain.RoleAdmin && actorRole != domain.RoleEmployee {
		return nil, ErrForbidden
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	if req.Action == "reject" {
		cr, err := s.requests.Reject(ctx, requestID, processorID)
		return cr, s.mapErr(err)
	}

	cr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, s.mapErr(err)
	}
	if cr.WantsGuide() && req.NewTourGuideID == nil {
		return nil, ErrMissingReplacement
	}
	if cr.WantsDriver() && req.NewDriverID == nil {
		return nil, ErrMissingReplacement
	}

	var newGuide, newDriver *int64
	if cr.WantsGuide() {
		newGuide = req.NewTourGuideID
	}
	if cr.WantsDriver() {
		newDriver = req.NewDriverID
	}

	cr, err = s.requests.Approve(ctx, requestID, processorID, newGuide, newDriver)
	return cr, s.mapErr(err)
}

// AvailableTourGuides lists guides with no blocking booking over the range.
func (s *Service) AvailableTourGuides(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	return s.staff.ListAvailableTourGuides(ctx, start, end)
}

// AvailableDrivers lists drivers with no blocking booking over the range.
func (s *Service) AvailableDrivers(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	return s.staff.ListAvailableDrivers(ctx, start, end)
}

func (s *Service) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrAlreadyProcessed):
		return ErrAlreadyProcessed
	}
	return err
}
