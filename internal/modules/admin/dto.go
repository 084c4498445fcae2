package admin

import "time"

// maxPictureBytes bounds the inline base64 driver photo. Oversized payloads
// are rejected outright rather than truncated to fit the column.
const maxPictureBytes = 65535

type RegisterEmployeeRequest struct {
	Username  string     `json:"username" binding:"required,min=3"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required"`
	Role      string     `json:"role" binding:"required,oneof=admin employee tourguide driver"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Position  string     `json:"position"`
	Salary    float64    `json:"salary"`
	HireDate  *time.Time `json:"hire_date,omitempty"`

	// tourguide only
	LanguagesSpoken string `json:"languages_spoken,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`

	// driver only
	LicenseNumber string `json:"license_number,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

type RegisterEmployeeResponse struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	Position string `json:"position,omitempty"`
}

type StatisticsResponse struct {
	TotalUsers     int64   `json:"total_users"`
	TotalCustomers int64   `json:"total_customers"`
	TotalBookings  int64   `json:"total_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingRefunds int64   `json:"pending_refunds"`
}
