package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/database"
	"tourbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByIdentifier looks a user up by email or username. When the identifier
// matches one row's email and another row's username, the email match wins.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	for i := range users {
		if users[i].Email == identifier {
			return &users[i], nil
		}
	}
	return &users[0], nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("user_id = ?", id).
		Update("password_hash", hash).Error
}

func (r *UserRepository) UpdateContact(ctx context.Context, id int64, firstName, lastName, phone string) error {
	updates := map[string]any{}
	if firstName != "" {
		updates["first_name"] = firstName
	}
	if lastName != "" {
		updates["last_name"] = lastName
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("user_id = ?", id).
		Updates(updates).Error
}

// CreateCustomerDetail bootstraps the customers row after signup. Callers
// treat a failure here as non-fatal: the user row already committed.
func (r *UserRepository) CreateCustomerDetail(ctx context.Context, userID int64, address string) error {
	return r.db.WithContext(ctx).Create(&domain.Customer{UserID: userID, Address: address}).Error
}

// StaffDetail carries the optional role-specific rows for staff creation.
type StaffDetail struct {
	Position string
	Salary   float64
	HireDate *time.Time
	Guide    *domain.TourGuide
	Driver   *domain.Driver
}

// CreateStaff inserts the users row plus the role tables in one transaction.
// Guides and drivers also get an employees row: every guide/driver is an
// employee, not every employee is a guide/driver.
func (r *UserRepository) CreateStaff(ctx context.Context, u *domain.User, detail StaffDetail) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		employee := &domain.Employee{
			UserID:   u.ID,
			Position: detail.Position,
			Salary:   detail.Salary,
			HireDate: detail.HireDate,
		}

		switch u.Role {
		case domain.RoleAdmin:
			return tx.Create(&domain.Admin{UserID: u.ID}).Error
		case domain.RoleEmployee:
			return tx.Create(employee).Error
		case domain.RoleTourGuide:
			if err := tx.Create(employee).Error; err != nil {
				return err
			}
			g := detail.Guide
			if g == nil {
				g = &domain.TourGuide{}
			}
			g.UserID = u.ID
			return tx.Create(g).Error
		case domain.RoleDriver:
			if err := tx.Create(employee).Error; err != nil {
				return err
			}
			d := detail.Driver
			if d == nil {
				d = &domain.Driver{}
			}
			d.UserID = u.ID
			return tx.Create(d).Error
		default:
			return ErrNotFound
		}
	})
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// StaffRow is one employee-roster entry with its users columns joined in.
type StaffRow struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	HireDate  *time.Time `json:"hire_date,omitempty"`
}

func (r *UserRepository) ListStaff(ctx context.Context) ([]StaffRow, error) {
	var rows []StaffRow
	err := r.db.WithContext(ctx).Raw(`
SELECT u.user_id, u.username, u.email, u.role, u.first_name, u.last_name, u.phone,
       e.position, e.hire_date
FROM users u
JOIN employees e ON e.user_id = u.user_id
ORDER BY u.user_id
`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAvailableTourGuides returns guides with no blocking booking overlapping
// [start, end]. Same overlap predicate as booking creation, as a read filter.
func (r *UserRepository) ListAvailableTourGuides(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	return r.listAvailable(ctx, "tourguides", "tour_guide_id", start, end)
}

func (r *UserRepository) ListAvailableDrivers(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	return r.listAvailable(ctx, "drivers", "driver_id", start, end)
}

func (r *UserRepository) listAvailable(ctx context.Context, roleTable, bookingCol string, start, end time.Time) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Raw(`
SELECT u.*
FROM users u
JOIN `+roleTable+` rt ON rt.user_id = u.user_id
WHERE NOT EXISTS (
    SELECT 1 FROM bookings b
    WHERE b.`+bookingCol+` = u.user_id
      AND b.status IN ('confirmed', 'in-progress')
      AND b.start_date <= ? AND b.end_date >= ?
)
ORDER BY u.user_id
`, end, start).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// lockForUpdate adds FOR UPDATE on postgres. SQLite serializes writers on its
// own, so the clause is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if database.IsPostgres(tx) {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
