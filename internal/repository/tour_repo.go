package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// TourListRow is a catalog entry with its promotion, if any, joined in.
type TourListRow struct {
	domain.Tour
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
}

// List joins only promotions active right now, collapsed to the best
// discount per tour so a tour with several promotion rows stays one listing
// row. The same window check backs GetByID via Promotion.ActiveAt.
func (r *TourRepository) List(ctx context.Context, onlyAvailable bool) ([]TourListRow, error) {
	now := time.Now()
	q := `
SELECT t.*, p.discount_percent
FROM tours t
LEFT JOIN (
	SELECT tour_id, MAX(discount_percent) AS discount_percent
	FROM promotion
	WHERE (valid_from IS NULL OR valid_from <= ?)
	  AND (valid_until IS NULL OR valid_until >= ?)
	GROUP BY tour_id
) p ON p.tour_id = t.tour_id
`
	args := []any{now, now}
	if onlyAvailable {
		q += "WHERE t.availability = ?\n"
		args = append(args, true)
	}
	q += "ORDER BY t.tour_id"

	var rows []TourListRow
	if err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var t domain.Tour
	if err := r.db.WithContext(ctx).First(&t, "tour_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TourRepository) GetPromotion(ctx context.Context, tourID int64) (*domain.Promotion, error) {
	var p domain.Promotion
	if err := r.db.WithContext(ctx).First(&p, "tour_id = ?", tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
