package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type ChangeRequestRepository struct {
	db *gorm.DB
}

func NewChangeRequestRepository(db *gorm.DB) *ChangeRequestRepository {
	return &ChangeRequestRepository{db: db}
}

func (r *ChangeRequestRepository) Create(ctx context.Context, cr *domain.ChangeRequest) error {
	return r.db.WithContext(ctx).Create(cr).Error
}

func (r *ChangeRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error) {
	var cr domain.ChangeRequest
	if err := r.db.WithContext(ctx).First(&cr, "request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cr, nil
}

func (r *ChangeRequestRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ChangeRequest, error) {
	var out []domain.ChangeRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("request_id DESC").
		Find(&out).Error
	return out, err
}

func (r *ChangeRequestRepository) ListByStatus(ctx context.Context, status domain.ChangeRequestStatus) ([]domain.ChangeRequest, error) {
	var out []domain.ChangeRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("request_id").
		Find(&out).Error
	return out, err
}

// Approve resolves a pending request and rewrites the booking's assignment
// columns. The request row is locked, so a second processor sees the final
// status and fails with ErrAlreadyProcessed instead of re-applying the
// change. On success, the stored status is completed.
func (r *ChangeRequestRepository) Approve(ctx context.Context, id, processorID int64, newGuideID, newDriverID *int64) (*domain.ChangeRequest, error) {
	var cr domain.ChangeRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&cr, "request_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if cr.Status != domain.RequestPending {
			return ErrAlreadyProcessed
		}

		bookingUpdates := map[string]any{}
		if newGuideID != nil {
			bookingUpdates["tour_guide_id"] = *newGuideID
			cr.NewTourGuideID = newGuideID
		}
		if newDriverID != nil {
			bookingUpdates["driver_id"] = *newDriverID
			cr.NewDriverID = newDriverID
		}
		if len(bookingUpdates) > 0 {
			res := tx.Model(&domain.Booking{}).
				Where("booking_id = ?", cr.BookingID).
				Updates(bookingUpdates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}

		now := time.Now()
		cr.Status = domain.RequestCompleted
		cr.ProcessedBy = &processorID
		cr.ProcessedAt = &now
		return tx.Model(&domain.ChangeRequest{}).Where("request_id = ?", id).Updates(map[string]any{
			"status":            cr.Status,
			"new_tour_guide_id": cr.NewTourGuideID,
			"new_driver_id":     cr.NewDriverID,
			"processed_by":      processorID,
			"processed_at":      now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// Reject resolves a pending request without touching the booking.
func (r *ChangeRequestRepository) Reject(ctx context.Context, id, processorID int64) (*domain.ChangeRequest, error) {
	var cr domain.ChangeRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&cr, "request_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if cr.Status != domain.RequestPending {
			return ErrAlreadyProcessed
		}

		now := time.Now()
		cr.Status = domain.RequestRejected
		cr.ProcessedBy = &processorID
		cr.ProcessedAt = &now
		return tx.Model(&domain.ChangeRequest{}).Where("request_id = ?", id).Updates(map[string]any{
			"status":       cr.Status,
			"processed_by": processorID,
			"processed_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &cr, nil
}
