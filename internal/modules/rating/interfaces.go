package rating

import (
	"context"

	"tourbook/internal/domain"
)

// RatingRepository defines the storage operations the service needs.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	Exists(ctx context.Context, bookingID int64, subject domain.RatingSubject) (bool, error)
	AverageForSubject(ctx context.Context, subject domain.RatingSubject, subjectID int64) (float64, int64, error)
}

// bookingReader gates submission on ownership and completion.
type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
