package changerequest

import (
	"context"
	"time"

	"tourbook/internal/domain"
)

// ChangeRequestRepository defines the storage operations the service needs.
type ChangeRequestRepository interface {
	Create(ctx context.Context, cr *domain.ChangeRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ChangeRequest, error)
	ListByStatus(ctx context.Context, status domain.ChangeRequestStatus) ([]domain.ChangeRequest, error)
	Approve(ctx context.Context, id, processorID int64, newGuideID, newDriverID *int64) (*domain.ChangeRequest, error)
	Reject(ctx context.Context, id, processorID int64) (*domain.ChangeRequest, error)
}

// bookingReader snapshots the current assignment when a request is filed.
type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error)
}

// staffLister finds guides and drivers free over a date range.
type staffLister interface {
	ListAvailableTourGuides(ctx context.Context, start, end time.Time) ([]domain.User, error)
	ListAvailableDrivers(ctx context.Context, start, end time.Time) ([]domain.User, error)
}
