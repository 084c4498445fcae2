package repository

import (
	"context"
	"errors"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// VehicleListRow joins the currently assigned driver's name, when present.
type VehicleListRow struct {
	domain.Vehicle
	DriverName *string `json:"driver_name,omitempty"`
}

func (r *VehicleRepository) List(ctx context.Context) ([]VehicleListRow, error) {
	var rows []VehicleListRow
	err := r.db.WithContext(ctx).Raw(`
SELECT v.*, u.username AS driver_name
FROM vehicles v
LEFT JOIN users u ON u.user_id = v.driver_id
ORDER BY v.vehicle_id
`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
