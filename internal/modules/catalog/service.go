package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

var ErrNotFound = errors.New("catalog entry not found")

type TourRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]repository.TourListRow, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	GetPromotion(ctx context.Context, tourID int64) (*domain.Promotion, error)
}

type VehicleRepository interface {
	List(ctx context.Context) ([]repository.VehicleListRow, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type Service struct {
	tours    TourRepository
	vehicles VehicleRepository
}

func NewService(tours TourRepository, vehicles VehicleRepository) *Service {
	return &Service{tours: tours, vehicles: vehicles}
}

// TourView is a catalog tour with the promotion applied.
type TourView struct {
	domain.Tour
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
}

func (s *Service) ListTours(ctx context.Context, onlyAvailable bool) ([]TourView, error) {
	rows, err := s.tours.List(ctx, onlyAvailable)
	if err != nil {
		return nil, err
	}

	out := make([]TourView, 0, len(rows))
	for _, r := range rows {
		v := TourView{Tour: r.Tour, DiscountPercent: r.DiscountPercent}
		v.ImagePath = normalizeImagePath(v.ImagePath)
		if r.DiscountPercent != nil {
			price := r.Price * (100 - *r.DiscountPercent) / 100
			v.DiscountedPrice = &price
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) GetTour(ctx context.Context, id int64) (*TourView, error) {
	t, err := s.tours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	v := &TourView{Tour: *t}
	v.ImagePath = normalizeImagePath(v.ImagePath)

	promo, err := s.tours.GetPromotion(ctx, id)
	if err == nil && promo.ActiveAt(time.Now()) {
		v.DiscountPercent = &promo.DiscountPercent
		price := t.Price * (100 - promo.DiscountPercent) / 100
		v.DiscountedPrice = &price
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return v, nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]repository.VehicleListRow, error) {
	return s.vehicles.List(ctx)
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// normalizeImagePath keeps legacy rows presentable: stored values range from
// bare filenames to full URLs.
func normalizeImagePath(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasPrefix(p, "/images/") {
		p = "/images" + p
	}
	return p
}
