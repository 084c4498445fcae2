package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// TourDays returns the template in insertion order (primary key), which the
// materialization renumbers by position.
func (r *ItineraryRepository) TourDays(ctx context.Context, tourID int64) ([]domain.TourItineraryDay, error) {
	var days []domain.TourItineraryDay
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("itinerary_id").
		Find(&days).Error
	return days, err
}

func (r *ItineraryRepository) CustomDays(ctx context.Context, bookingID int64) ([]domain.CustomItineraryDay, error) {
	var days []domain.CustomItineraryDay
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("day_number").
		Find(&days).Error
	return days, err
}

// CreateFromTour copies the tour template into booking-owned rows. Used
// directly for backfills; payment creation invokes the same copy inside its
// own transaction.
func (r *ItineraryRepository) CreateFromTour(ctx context.Context, bookingID, tourID int64) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = copyTourDays(tx, bookingID, tourID)
		return err
	})
	return n, err
}

// copyTourDays renumbers template days 1..N by position and inserts them as
// custom_itinerary rows. Idempotent: a booking that already has custom days
// is left untouched.
func copyTourDays(tx *gorm.DB, bookingID, tourID int64) (int, error) {
	var existing int64
	if err := tx.Model(&domain.CustomItineraryDay{}).Where("booking_id = ?", bookingID).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	var template []domain.TourItineraryDay
	if err := tx.Where("tour_id = ?", tourID).Order("itinerary_id").Find(&template).Error; err != nil {
		return 0, err
	}
	if len(template) == 0 {
		return 0, nil
	}

	days := make([]domain.CustomItineraryDay, 0, len(template))
	for i, t := range template {
		days = append(days, domain.CustomItineraryDay{
			BookingID:   bookingID,
			DayNumber:   i + 1,
			Title:       t.Title,
			Description: t.Description,
			Location:    t.Location,
		})
	}
	if err := tx.Create(&days).Error; err != nil {
		return 0, err
	}
	return len(days), nil
}

// UpdateDay patches a custom itinerary day with whichever fields are present.
func (r *ItineraryRepository) UpdateDay(ctx context.Context, bookingID int64, dayNumber int, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&domain.CustomItineraryDay{}).
		Where("booking_id = ? AND day_number = ?", bookingID, dayNumber).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ItineraryRepository) CreateRequest(ctx context.Context, req *domain.ItineraryRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ItineraryRepository) ListRequests(ctx context.Context, bookingID int64) ([]domain.ItineraryRequest, error) {
	var out []domain.ItineraryRequest
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("itinerary_request_id").
		Find(&out).Error
	return out, err
}
