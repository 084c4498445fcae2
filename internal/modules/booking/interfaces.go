package booking

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

// BookingRepository defines the storage operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking, patch *repository.ContactPatch) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetail(ctx context.Context, id int64) (*repository.DetailRow, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	AssignedStaff(ctx context.Context, bookingID int64) (guideID, driverID *int64, err error)
	IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error)
}
