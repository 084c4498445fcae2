package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

// ContactPatch optionally refreshes the customer's name/phone from the
// booking request before the insert.
type ContactPatch struct {
	FirstName string
	LastName  string
	Phone     string
}

// Create runs the availability-gated insert in one transaction. Resource
// checks take row locks on the referenced tour/vehicle/driver rows, so two
// concurrent requests for the same driver serialize: the overlap check alone
// cannot exclude a booking inserted after the check, the lock on the driver's
// users row can.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, patch *ContactPatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.TourID != nil {
			var tour domain.Tour
			err := lockForUpdate(tx).First(&tour, "tour_id = ?", *b.TourID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTourUnavailable
				}
				return err
			}
			if !tour.Availability {
				return ErrTourUnavailable
			}
		}

		if b.VehicleID != nil {
			var vehicle domain.Vehicle
			err := lockForUpdate(tx).First(&vehicle, "vehicle_id = ?", *b.VehicleID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVehicleUnavailable
				}
				return err
			}
			if !vehicle.IsAvailable() {
				return ErrVehicleUnavailable
			}
		}

		if b.DriverID != nil {
			var driver domain.User
			err := lockForUpdate(tx).First(&driver, "user_id = ?", *b.DriverID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrDriverConflict
				}
				return err
			}

			var cnt int64
			err = tx.Model(&domain.Booking{}).
				Where("driver_id = ? AND status IN ?", *b.DriverID,
					[]string{string(domain.BookingConfirmed), string(domain.BookingInProgress)}).
				Where("start_date <= ? AND end_date >= ?", b.EndDate, b.StartDate).
				Count(&cnt).Error
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrDriverConflict
			}
		}

		if patch != nil {
			updates := map[string]any{}
			if patch.FirstName != "" {
				updates["first_name"] = patch.FirstName
			}
			if patch.LastName != "" {
				updates["last_name"] = patch.LastName
			}
			if patch.Phone != "" {
				updates["phone"] = patch.Phone
			}
			if len(updates) > 0 {
				if err := tx.Model(&domain.User{}).Where("user_id = ?", b.UserID).Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// DetailRow is the booking joined across tour, vehicle, guide, driver and
// payment for the detail view.
type DetailRow struct {
	BookingID      int64      `json:"booking_id"`
	UserID         int64      `json:"user_id"`
	TourID         *int64     `json:"tour_id,omitempty"`
	VehicleID      *int64     `json:"vehicle_id,omitempty"`
	DriverID       *int64     `json:"driver_id,omitempty"`
	TourGuideID    *int64     `json:"tour_guide_id,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	TotalPrice     float64    `json:"total_price"`
	Status         string     `json:"status"`
	NumberOfPeople int        `json:"number_of_people"`
	TourName       *string    `json:"tour_name,omitempty"`
	Destination    *string    `json:"destination,omitempty"`
	VehicleMake    *string    `json:"vehicle_make,omitempty"`
	VehicleModel   *string    `json:"vehicle_model,omitempty"`
	GuideName      *string    `json:"guide_name,omitempty"`
	DriverName     *string    `json:"driver_name,omitempty"`
	PaymentStatus  *string    `json:"payment_status,omitempty"`
	PaymentAmount  *float64   `json:"payment_amount,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (r *BookingRepository) GetDetail(ctx context.Context, id int64) (*DetailRow, error) {
	var row DetailRow
	res := r.db.WithContext(ctx).Raw(`
SELECT b.booking_id, b.user_id, b.tour_id, b.vehicle_id, b.driver_id, b.tour_guide_id,
       b.start_date, b.end_date, b.total_price, b.status, b.number_of_people, b.created_at,
       t.name AS tour_name, t.destination,
       v.make AS vehicle_make, v.model AS vehicle_model,
       g.username AS guide_name,
       d.username AS driver_name,
       p.status AS payment_status, p.amount AS payment_amount
FROM bookings b
LEFT JOIN tours t ON t.tour_id = b.tour_id
LEFT JOIN vehicles v ON v.vehicle_id = b.vehicle_id
LEFT JOIN users g ON g.user_id = b.tour_guide_id
LEFT JOIN users d ON d.user_id = b.driver_id
LEFT JOIN payments p ON p.booking_id = b.booking_id
WHERE b.booking_id = ?
`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_id DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Order("booking_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("booking_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignedStaff returns the booking's current guide and driver ids. Live
// location access control is derived from this on every call.
func (r *BookingRepository) AssignedStaff(ctx context.Context, bookingID int64) (guideID, driverID *int64, err error) {
	b, err := r.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	return b.TourGuideID, b.DriverID, nil
}

func (r *BookingRepository) IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
