package location

import (
	"context"

	"tourbook/internal/domain"
)

// LocationRepository defines the storage operations the service needs.
type LocationRepository interface {
	Upsert(ctx context.Context, loc *domain.LiveLocation) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.LiveLocation, error)
}

// bookingReader resolves who may write and read a booking's location.
// Assignment is re-read on every call, so a replaced guide or driver loses
// access on the next request.
type bookingReader interface {
	IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error)
	AssignedStaff(ctx context.Context, bookingID int64) (guideID, driverID *int64, err error)
}
