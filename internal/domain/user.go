package domain

import "time"

type UserRole string

const (
	RoleCustomer  UserRole = "customer"
	RoleAdmin     UserRole = "admin"
	RoleEmployee  UserRole = "employee"
	RoleTourGuide UserRole = "tourguide"
	RoleDriver    UserRole = "driver"
)

// IsStaff reports whether the role may use the employee dashboard.
func (r UserRole) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleTourGuide, RoleDriver:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex" validate:"required"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role detail rows live in subsidiary tables keyed by the same user id.
// Every guide and driver also has an employees row; the reverse does not hold.

type Customer struct {
	UserID  int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	Address string `json:"address,omitempty"`
}

type Admin struct {
	UserID int64 `json:"user_id" gorm:"column:user_id;primaryKey"`
}

type Employee struct {
	UserID   int64      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Position string     `json:"position,omitempty"`
	Salary   float64    `json:"salary,omitempty"`
	HireDate *time.Time `json:"hire_date,omitempty"`
}

type TourGuide struct {
	UserID          int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	LanguagesSpoken string `json:"languages_spoken,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
}

func (TourGuide) TableName() string { return "tourguides" }

type Driver struct {
	UserID        int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	LicenseNumber string `json:"license_number,omitempty"`
	Picture       string `json:"picture,omitempty" gorm:"type:text"`
}
