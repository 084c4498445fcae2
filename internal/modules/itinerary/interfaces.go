package itinerary

import (
	"context"

	"tourbook/internal/domain"
)

// ItineraryRepository defines the storage operations the service needs.
type ItineraryRepository interface {
	TourDays(ctx context.Context, tourID int64) ([]domain.TourItineraryDay, error)
	CustomDays(ctx context.Context, bookingID int64) ([]domain.CustomItineraryDay, error)
	UpdateDay(ctx context.Context, bookingID int64, dayNumber int, fields map[string]any) error
	CreateRequest(ctx context.Context, req *domain.ItineraryRequest) error
	ListRequests(ctx context.Context, bookingID int64) ([]domain.ItineraryRequest, error)
}

// bookingReader resolves booking ownership and staff assignment for
// access checks.
type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error)
	AssignedStaff(ctx context.Context, bookingID int64) (guideID, driverID *int64, err error)
}
