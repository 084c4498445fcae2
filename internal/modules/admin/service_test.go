package admin

import (
	"context"
	"strings"
	"testing"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) CreateStaff(ctx context.Context, u *domain.User, detail repository.StaffDetail) error {
	args := m.Called(ctx, u, detail)
	return args.Error(0)
}

func (m *mockUserRepo) ListStaff(ctx context.Context) ([]repository.StaffRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StaffRow), args.Error(1)
}

func (m *mockUserRepo) DB() *gorm.DB {
	return &gorm.DB{}
}

func adminActor() *domain.User {
	return &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin}
}

func validDriverRequest() RegisterEmployeeRequest {
	return RegisterEmployeeRequest{
		Username:      "driver9",
		Email:         "driver9@tourbook.kz",
		Password:      "Str0ng!pass",
		Role:          "driver",
		Position:      "driver",
		LicenseNumber: "KZ-DR-0099",
	}
}

func TestService_RegisterEmployee_Driver(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "driver9", "driver9@tourbook.kz").Return(false, nil)
	users.On("CreateStaff", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleDriver
	}), mock.MatchedBy(func(d repository.StaffDetail) bool {
		return d.Driver != nil && d.Driver.LicenseNumber == "KZ-DR-0099" && d.Guide == nil
	})).Return(nil)

	svc := NewService(users)
	resp, err := svc.RegisterEmployee(context.Background(), 1, validDriverRequest())

	assert.NoError(t, err)
	assert.Equal(t, "driver", resp.Role)
	users.AssertExpectations(t)
}

func TestService_RegisterEmployee_NonAdminRejected(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID: 5, Role: domain.RoleEmployee,
	}, nil)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 5, validDriverRequest())

	assert.ErrorIs(t, err, ErrUnauthorized)
	users.AssertNotCalled(t, "CreateStaff", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterEmployee_WeakPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)

	req := validDriverRequest()
	req.Password = "short"

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrWeakPassword)
	users.AssertNotCalled(t, "CreateStaff", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterEmployee_OversizedPictureRejected(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)

	req := validDriverRequest()
	req.Picture = strings.Repeat("a", maxPictureBytes+1)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrPayloadTooLarge, "oversized photo is rejected, never truncated")
	users.AssertNotCalled(t, "CreateStaff", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterEmployee_PictureAtLimitAccepted(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)
	users.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	users.On("CreateStaff", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := validDriverRequest()
	req.Picture = strings.Repeat("a", maxPictureBytes)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, req)

	assert.NoError(t, err)
}

func TestService_RegisterEmployee_Duplicate(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "driver9", "driver9@tourbook.kz").Return(true, nil)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, validDriverRequest())

	assert.ErrorIs(t, err, ErrDuplicate)
	users.AssertNotCalled(t, "CreateStaff", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterEmployee_RaceLostMapsToDuplicate(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)
	users.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	// the pre-check passed but the unique index fired inside the transaction
	users.On("CreateStaff", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, validDriverRequest())

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_RegisterEmployee_TourGuideDetail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminActor(), nil)
	users.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	users.On("CreateStaff", mock.Anything, mock.Anything, mock.MatchedBy(func(d repository.StaffDetail) bool {
		return d.Guide != nil && d.Guide.LanguagesSpoken == "kazakh,english" && d.Driver == nil
	})).Return(nil)

	svc := NewService(users)
	_, err := svc.RegisterEmployee(context.Background(), 1, RegisterEmployeeRequest{
		Username:        "guide9",
		Email:           "guide9@tourbook.kz",
		Password:        "Str0ng!pass",
		Role:            "tourguide",
		LanguagesSpoken: "kazakh,english",
		ExperienceYears: 4,
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}
