package domain

import (
	"strings"
	"time"
)

const VehicleAvailable = "available"

type Vehicle struct {
	ID        int64     `json:"vehicle_id" gorm:"column:vehicle_id;primaryKey"`
	DriverID  *int64    `json:"driver_id,omitempty"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Capacity  int       `json:"capacity" validate:"gte=1"`
	DailyRate float64   `json:"daily_rate" validate:"gte=0"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAvailable compares status case-insensitively; legacy rows carry mixed
// casing.
func (v *Vehicle) IsAvailable() bool {
	return strings.EqualFold(v.Status, VehicleAvailable)
}
