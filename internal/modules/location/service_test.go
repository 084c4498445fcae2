package location

import (
	"context"
	"testing"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLocationRepo struct {
	mock.Mock
}

func (m *mockLocationRepo) Upsert(ctx context.Context, loc *domain.LiveLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *mockLocationRepo) GetByBookingID(ctx context.Context, bookingID int64) (*domain.LiveLocation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveLocation), args.Error(1)
}

type mockBookingReader struct {
	mock.Mock
}

func (m *mockBookingReader) IsOwnedByUser(ctx context.Context, bookingID, userID int64) (bool, error) {
	args := m.Called(ctx, bookingID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingReader) AssignedStaff(ctx context.Context, bookingID int64) (*int64, *int64, error) {
	args := m.Called(ctx, bookingID)
	var guide, driver *int64
	if args.Get(0) != nil {
		guide = args.Get(0).(*int64)
	}
	if args.Get(1) != nil {
		driver = args.Get(1).(*int64)
	}
	return guide, driver, args.Error(2)
}

func TestService_Update_AssignedDriver(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	driverID := int64(5)
	bookings.On("AssignedStaff", mock.Anything, int64(10)).Return(nil, &driverID, nil)
	locations.On("Upsert", mock.Anything, mock.MatchedBy(func(l *domain.LiveLocation) bool {
		return l.BookingID == 10 && l.UpdatedBy == 5
	})).Return(nil)

	svc := NewService(locations, bookings, NewHub())
	loc, err := svc.Update(context.Background(), 5, UpdateRequest{
		BookingID: 10,
		Latitude:  43.238949,
		Longitude: 76.889709,
	})

	assert.NoError(t, err)
	assert.Equal(t, 43.238949, loc.Latitude)
	locations.AssertExpectations(t)
}

func TestService_Update_UnassignedDenied(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	otherDriver := int64(99)
	bookings.On("AssignedStaff", mock.Anything, int64(10)).Return(nil, &otherDriver, nil)

	svc := NewService(locations, bookings, NewHub())
	_, err := svc.Update(context.Background(), 5, UpdateRequest{
		BookingID: 10,
		Latitude:  43.2,
		Longitude: 76.8,
	})

	assert.ErrorIs(t, err, ErrForbidden,
		"a driver replaced by a change request loses write access on the next report")
	locations.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_Update_CoordinatesValidated(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	svc := NewService(locations, bookings, NewHub())
	_, err := svc.Update(context.Background(), 5, UpdateRequest{
		BookingID: 10,
		Latitude:  123.0,
		Longitude: 76.8,
	})

	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "AssignedStaff", mock.Anything, mock.Anything)
}

func TestService_Get_Owner(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	locations.On("GetByBookingID", mock.Anything, int64(10)).Return(&domain.LiveLocation{
		BookingID: 10,
		Latitude:  43.2,
		Longitude: 76.8,
	}, nil)

	svc := NewService(locations, bookings, NewHub())
	loc, err := svc.Get(context.Background(), 10, 7, domain.RoleCustomer)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), loc.BookingID)
}

func TestService_Get_NoReportYet(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	locations.On("GetByBookingID", mock.Anything, int64(10)).Return(nil, repository.ErrNotFound)

	svc := NewService(locations, bookings, NewHub())
	_, err := svc.Get(context.Background(), 10, 7, domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_StrangerDenied(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(99)).Return(false, nil)
	bookings.On("AssignedStaff", mock.Anything, int64(10)).Return(nil, nil, nil)

	svc := NewService(locations, bookings, NewHub())
	_, err := svc.Get(context.Background(), 10, 99, domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Authorize_AdminAllowed(t *testing.T) {
	locations := new(mockLocationRepo)
	bookings := new(mockBookingReader)

	svc := NewService(locations, bookings, NewHub())
	err := svc.Authorize(context.Background(), 10, 1, domain.RoleAdmin)

	assert.NoError(t, err)
	bookings.AssertNotCalled(t, "IsOwnedByUser", mock.Anything, mock.Anything, mock.Anything)
}
