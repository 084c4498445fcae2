package domain

import "time"

type Tour struct {
	ID           int64     `json:"tour_id" gorm:"column:tour_id;primaryKey"`
	Name         string    `json:"name" validate:"required"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"duration_days"`
	Price        float64   `json:"price" validate:"gte=0"`
	Availability bool      `json:"availability"`
	TourGuideID  *int64    `json:"tour_guide_id,omitempty"`
	ImagePath    string    `json:"image_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Promotion is a per-tour discount joined into catalog listings.
type Promotion struct {
	ID              int64      `json:"promotion_id" gorm:"column:promotion_id;primaryKey"`
	TourID          int64      `json:"tour_id"`
	DiscountPercent float64    `json:"discount_percent" validate:"gte=0,lte=100"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
}

func (Promotion) TableName() string { return "promotion" }

// ActiveAt reports whether the promotion applies at the given time.
func (p *Promotion) ActiveAt(t time.Time) bool {
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && t.After(*p.ValidUntil) {
		return false
	}
	return true
}
