package repository

import (
	"context"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts one rating per (booking, subject type). The pair check runs
// inside the transaction so a double submit cannot slip through between
// check and insert.
func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&domain.Rating{}).
			Where("booking_id = ? AND subject_type = ?", rating.BookingID, rating.SubjectType).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicate
		}
		return tx.Create(rating).Error
	})
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *RatingRepository) Exists(ctx context.Context, bookingID int64, subject domain.RatingSubject) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Where("booking_id = ? AND subject_type = ?", bookingID, subject).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RatingRepository) AverageForSubject(ctx context.Context, subject domain.RatingSubject, subjectID int64) (float64, int64, error) {
	type row struct {
		Avg float64
		Cnt int64
	}
	var res row
	err := r.db.WithContext(ctx).Raw(`
SELECT COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS cnt
FROM ratings
WHERE subject_type = ? AND subject_id = ?
`, subject, subjectID).Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.Avg, res.Cnt, nil
}
