package itinerary

import (
	"context"
	"testing"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockItineraryRepo struct {
	mock.Mock
}

func (m *mockItineraryRepo) TourDays(ctx context.Context, tourID int64) ([]domain.TourItineraryDay, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourItineraryDay), args.Error(1)
}

func (m *mockItineraryRepo) CustomDays(ctx context.Context, bookingID int64) ([]domain.CustomItineraryDay, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomItineraryDay), args.Error(1)
}

func (m *mockItineraryRepo) UpdateDay(ctx context.Context, bookingID int64, dayNumber int, fields map[string]any) error {
	args := m.Called(ctx, bookingID, dayNumber, fields)
	return args.Error(0)
}

func (m *mockItineraryRepo) CreateRequest(ctx context.Context, req *domain.ItineraryRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockItineraryRepo) ListRequests(ctx context.Context, bookingID int64) ([]domain.ItineraryRequest, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItineraryRequest), args.Error(1)
}

type mockBookingReader struct {
	mock.Mock
}

func (m *mockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

func strptr(s string) *string { return &s }

func TestService_GetCustomItinerary_Owner(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	itineraries.On("CustomDays", mock.Anything, int64(10)).Return([]domain.CustomItineraryDay{
		{BookingID: 10, DayNumber: 1, Title: "Day 1"},
		{BookingID: 10, DayNumber: 2, Title: "Day 2"},
	}, nil)

	svc := NewService(itineraries, bookings)
	days, err := svc.GetCustomItinerary(context.Background(), 10, 7, domain.RoleCustomer)

	assert.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestService_GetCustomItinerary_AssignedGuide(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	guideID := int64(4)
	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(4)).Return(false, nil)
	bookings.On("AssignedStaff", mock.Anything, int64(10)).Return(&guideID, nil, nil)
	itineraries.On("CustomDays", mock.Anything, int64(10)).Return([]domain.CustomItineraryDay{}, nil)

	svc := NewService(itineraries, bookings)
	_, err := svc.GetCustomItinerary(context.Background(), 10, 4, domain.RoleTourGuide)

	assert.NoError(t, err)
}

func TestService_GetCustomItinerary_StrangerDenied(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(99)).Return(false, nil)
	bookings.On("AssignedStaff", mock.Anything, int64(10)).Return(nil, nil, nil)

	svc := NewService(itineraries, bookings)
	_, err := svc.GetCustomItinerary(context.Background(), 10, 99, domain.RoleCustomer)

	assert.ErrorIs(t, err, ErrForbidden)
	itineraries.AssertNotCalled(t, "CustomDays", mock.Anything, mock.Anything)
}

func TestService_UpdateDay_PatchesOnlyProvidedFields(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	itineraries.On("UpdateDay", mock.Anything, int64(10), 2, map[string]any{
		"title": "Lake hike",
	}).Return(nil)
	itineraries.On("CustomDays", mock.Anything, int64(10)).Return([]domain.CustomItineraryDay{}, nil)

	svc := NewService(itineraries, bookings)
	_, err := svc.UpdateDay(context.Background(), 10, 2, 7, domain.RoleCustomer, UpdateDayRequest{
		Title: strptr("Lake hike"),
	})

	assert.NoError(t, err)
	itineraries.AssertExpectations(t)
}

func TestService_UpdateDay_EmptyPatchRejected(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)

	svc := NewService(itineraries, bookings)
	_, err := svc.UpdateDay(context.Background(), 10, 2, 7, domain.RoleCustomer, UpdateDayRequest{})

	assert.ErrorIs(t, err, ErrValidation)
	itineraries.AssertNotCalled(t, "UpdateDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateDay_MissingDay(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	itineraries.On("UpdateDay", mock.Anything, int64(10), 9, mock.Anything).Return(repository.ErrNotFound)

	svc := NewService(itineraries, bookings)
	_, err := svc.UpdateDay(context.Background(), 10, 9, 7, domain.RoleCustomer, UpdateDayRequest{
		Title: strptr("ghost day"),
	})

	assert.ErrorIs(t, err, ErrDayOutOfRange)
}

func TestService_SubmitRequest(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	itineraries.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *domain.ItineraryRequest) bool {
		return r.BookingID == 10 && r.UserID == 7 && r.Status == domain.ItineraryRequestPending
	})).Return(nil)

	svc := NewService(itineraries, bookings)
	ir, err := svc.SubmitRequest(context.Background(), 7, domain.RoleCustomer, SubmitRequestRequest{
		BookingID:       10,
		RequestedChange: "swap day 2 and day 3",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ItineraryRequestPending, ir.Status)
}

func TestService_SubmitRequest_MissingText(t *testing.T) {
	itineraries := new(mockItineraryRepo)
	bookings := new(mockBookingReader)

	svc := NewService(itineraries, bookings)
	_, err := svc.SubmitRequest(context.Background(), 7, domain.RoleCustomer, SubmitRequestRequest{
		BookingID: 10,
	})

	assert.ErrorIs(t, err, ErrValidation)
}
