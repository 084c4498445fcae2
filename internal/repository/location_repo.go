package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Upsert keeps exactly one live position per booking.
func (r *LocationRepository) Upsert(ctx context.Context, loc *domain.LiveLocation) error {
	loc.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"latitude", "longitude", "updated_by", "updated_at",
		}),
	}).Create(loc).Error
}

func (r *LocationRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.LiveLocation, error) {
	var loc domain.LiveLocation
	if err := r.db.WithContext(ctx).First(&loc, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}
