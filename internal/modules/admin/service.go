package admin

import (
	"context"
	"errors"
	"strings"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/password"
	"tourbook/internal/repository"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// RegisterEmployee creates a staff account: the users row plus the role
// subsidiary tables in one transaction. Guides and drivers are also inserted
// into employees. All validation happens before the transaction opens.
func (s *Service) RegisterEmployee(ctx context.Context, adminUserID int64, req RegisterEmployeeRequest) (*RegisterEmployeeResponse, error) {
	actor, err := s.users.GetByID(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin {
		return nil, ErrUnauthorized
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return nil, ErrValidation
	}
	if !password.CheckStrength(req.Password) {
		return nil, ErrWeakPassword
	}
	if req.Role == string(domain.RoleDriver) && len(req.Picture) > maxPictureBytes {
		return nil, ErrPayloadTooLarge
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRole(req.Role),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}

	detail := repository.StaffDetail{
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: req.HireDate,
	}
	switch user.Role {
	case domain.RoleTourGuide:
		detail.Guide = &domain.TourGuide{
			LanguagesSpoken: req.LanguagesSpoken,
			ExperienceYears: req.ExperienceYears,
		}
	case domain.RoleDriver:
		detail.Driver = &domain.Driver{
			LicenseNumber: req.LicenseNumber,
			Picture:       req.Picture,
		}
	}

	if err := s.users.CreateStaff(ctx, user, detail); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &RegisterEmployeeResponse{
		UserID:   user.ID,
		Role:     string(user.Role),
		Position: req.Position,
	}, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]repository.StaffRow, error) {
	return s.users.ListStaff(ctx)
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	db := s.users.DB().WithContext(ctx)
	var stats StatisticsResponse

	if err := db.Table("users").Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("users").Where("role = ?", domain.RoleCustomer).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Table("bookings").Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := db.Table("payments").Where("status = ?", domain.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Table("payments").Where("refund_request = ?", true).Count(&stats.PendingRefunds).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
