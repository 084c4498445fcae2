package rating

import (
	"context"
	"errors"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/validator"
	"tourbook/internal/repository"
)

type Service struct {
	ratings  RatingRepository
	bookings bookingReader
}

func NewService(ratings RatingRepository, bookings bookingReader) *Service {
	return &Service{ratings: ratings, bookings: bookings}
}

// Submit records one rating per (booking, subject type). The booking must
// belong to the actor and be completed; the subject ID comes from the
// booking row itself.
func (s *Service) Submit(ctx context.Context, actorID int64, req SubmitRequest) (*domain.Rating, error) {
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
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrNotCompleted
	}

	subject := domain.RatingSubject(req.SubjectType)
	subjectID, ok := subjectIDFor(b, subject)
	if !ok {
		return nil, ErrValidation
	}

	r := &domain.Rating{
		BookingID:   req.BookingID,
		UserID:      actorID,
		SubjectType: subject,
		SubjectID:   subjectID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if err := s.ratings.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}
	return r, nil
}

// HasRating reports whether the booking already carries a rating for the
// subject type, so clients can skip the prompt.
func (s *Service) HasRating(ctx context.Context, bookingID int64, subjectType string) (bool, error) {
	subject := domain.RatingSubject(subjectType)
	switch subject {
	case domain.SubjectDriver, domain.SubjectTourGuide, domain.SubjectTour:
	default:
		return false, ErrValidation
	}
	return s.ratings.Exists(ctx, bookingID, subject)
}

// SubjectAverage returns the mean score and sample size for a subject.
func (s *Service) SubjectAverage(ctx context.Context, subjectType string, subjectID int64) (*SubjectAverageResponse, error) {
	subject := domain.RatingSubject(subjectType)
	switch subject {
	case domain.SubjectDriver, domain.SubjectTourGuide, domain.SubjectTour:
	default:
		return nil, ErrValidation
	}

	avg, count, err := s.ratings.AverageForSubject(ctx, subject, subjectID)
	if err != nil {
		return nil, err
	}
	return &SubjectAverageResponse{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Average:     avg,
		Count:       count,
	}, nil
}

func subjectIDFor(b *domain.Booking, subject domain.RatingSubject) (int64, bool) {
	switch subject {
	case domain.SubjectDriver:
		if b.DriverID != nil {
			return *b.DriverID, true
		}
	case domain.SubjectTourGuide:
		if b.TourGuideID != nil {
			return *b.TourGuideID, true
		}
	case domain.SubjectTour:
		if b.TourID != nil {
			return *b.TourID, true
		}
	}
	return 0, false
}
