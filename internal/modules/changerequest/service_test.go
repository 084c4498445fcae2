package changerequest

import (
	"context"
	"testing"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChangeRequestRepo struct {
	mock.Mock
}

func (m *mockChangeRequestRepo) Create(ctx context.Context, cr *domain.ChangeRequest) error {
	args := m.Called(ctx, cr)
	return args.Error(0)
}

func (m *mockChangeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *mockChangeRequestRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ChangeRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChangeRequest), args.Error(1)
}

func (m *mockChangeRequestRepo) ListByStatus(ctx context.Context, status domain.ChangeRequestStatus) ([]domain.ChangeRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChangeRequest), args.Error(1)
}

func (m *mockChangeRequestRepo) Approve(ctx context.Context, id, processorID int64, newGuideID, newDriverID *int64) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, id, processorID, newGuideID, newDriverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *mockChangeRequestRepo) Reject(ctx context.Context, id, processorID int64) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, id, processorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
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

type mockStaffLister struct {
	mock.Mock
}

func (m *mockStaffLister) ListAvailableTourGuides(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockStaffLister) ListAvailableDrivers(ctx context.Context, start, end time.Time) ([]domain.User, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func newTestService() (*Service, *mockChangeRequestRepo, *mockBookingReader, *mockStaffLister) {
	requests := new(mockChangeRequestRepo)
	bookings := new(mockBookingReader)
	staff := new(mockStaffLister)
	return NewService(requests, bookings, staff), requests, bookings, staff
}

func TestService_Create_SnapshotsCurrentAssignment(t *testing.T) {
	svc, requests, bookings, _ := newTestService()

	guideID := int64(4)
	driverID := int64(5)
	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(7)).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:          10,
		UserID:      7,
		TourGuideID: &guideID,
		DriverID:    &driverID,
	}, nil)
	requests.On("Create", mock.Anything, mock.MatchedBy(func(cr *domain.ChangeRequest) bool {
		return cr.Status == domain.RequestPending &&
			cr.CurrentTourGuideID != nil && *cr.CurrentTourGuideID == 4 &&
			cr.CurrentDriverID != nil && *cr.CurrentDriverID == 5
	})).Return(nil)

	cr, err := svc.Create(context.Background(), 7, domain.RoleCustomer, CreateRequest{
		BookingID:   10,
		RequestType: "both",
		Reason:      "guide was late twice",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestPending, cr.Status)
	requests.AssertExpectations(t)
}

func TestService_Create_NotOwner(t *testing.T) {
	svc, requests, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{ID: 10, UserID: 7}, nil)
	bookings.On("IsOwnedByUser", mock.Anything, int64(10), int64(8)).Return(false, nil)

	_, err := svc.Create(context.Background(), 8, domain.RoleCustomer, CreateRequest{
		BookingID:   10,
		RequestType: "driver",
		Reason:      "reckless driving",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_EmployeeOnCustomersBehalf(t *testing.T) {
	svc, requests, bookings, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{ID: 10, UserID: 7}, nil)
	requests.On("Create", mock.Anything, mock.MatchedBy(func(cr *domain.ChangeRequest) bool {
		// the booking's owner stays the recorded requester
		return cr.UserID == 7
	})).Return(nil)

	cr, err := svc.Create(context.Background(), 99, domain.RoleEmployee, CreateRequest{
		BookingID:   10,
		RequestType: "driver",
		Reason:      "customer called the office",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), cr.UserID)
	bookings.AssertNotCalled(t, "IsOwnedByUser", mock.Anything, mock.Anything, mock.Anything)
	requests.AssertExpectations(t)
}

func TestService_Process_ApproveRequiresReplacements(t *testing.T) {
	cases := []struct {
		name        string
		requestType domain.ChangeRequestType
		req         ProcessRequest
		wantErr     error
	}{
		{
			"both without driver",
			domain.ChangeBoth,
			ProcessRequest{Action: "approve", NewTourGuideID: ptr(20)},
			ErrMissingReplacement,
		},
		{
			"both without guide",
			domain.ChangeBoth,
			ProcessRequest{Action: "approve", NewDriverID: ptr(21)},
			ErrMissingReplacement,
		},
		{
			"guide without guide",
			domain.ChangeTourGuide,
			ProcessRequest{Action: "approve"},
			ErrMissingReplacement,
		},
		{
			"driver without driver",
			domain.ChangeDriver,
			ProcessRequest{Action: "approve"},
			ErrMissingReplacement,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, requests, _, _ := newTestService()
			requests.On("GetByID", mock.Anything, int64(3)).Return(&domain.ChangeRequest{
				ID:          3,
				RequestType: tc.requestType,
				Status:      domain.RequestPending,
			}, nil)

			_, err := svc.Process(context.Background(), 3, 1, domain.RoleAdmin, tc.req)

			assert.ErrorIs(t, err, tc.wantErr)
			requests.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Process_ApproveBoth(t *testing.T) {
	svc, requests, _, _ := newTestService()

	requests.On("GetByID", mock.Anything, int64(3)).Return(&domain.ChangeRequest{
		ID:          3,
		RequestType: domain.ChangeBoth,
		Status:      domain.RequestPending,
	}, nil)
	requests.On("Approve", mock.Anything, int64(3), int64(1), ptrMatch(20), ptrMatch(21)).
		Return(&domain.ChangeRequest{ID: 3, Status: domain.RequestCompleted}, nil)

	cr, err := svc.Process(context.Background(), 3, 1, domain.RoleEmployee, ProcessRequest{
		Action:         "approve",
		NewTourGuideID: ptr(20),
		NewDriverID:    ptr(21),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, cr.Status)
}

func TestService_Process_GuideOnlyIgnoresDriverField(t *testing.T) {
	svc, requests, _, _ := newTestService()

	requests.On("GetByID", mock.Anything, int64(3)).Return(&domain.ChangeRequest{
		ID:          3,
		RequestType: domain.ChangeTourGuide,
		Status:      domain.RequestPending,
	}, nil)
	// a stray driver id on a guide-only request must not reach the repo
	requests.On("Approve", mock.Anything, int64(3), int64(1), ptrMatch(20), (*int64)(nil)).
		Return(&domain.ChangeRequest{ID: 3, Status: domain.RequestCompleted}, nil)

	_, err := svc.Process(context.Background(), 3, 1, domain.RoleAdmin, ProcessRequest{
		Action:         "approve",
		NewTourGuideID: ptr(20),
		NewDriverID:    ptr(99),
	})

	assert.NoError(t, err)
	requests.AssertExpectations(t)
}

func TestService_Process_AlreadyProcessed(t *testing.T) {
	svc, requests, _, _ := newTestService()

	requests.On("Reject", mock.Anything, int64(3), int64(1)).Return(nil, repository.ErrAlreadyProcessed)

	_, err := svc.Process(context.Background(), 3, 1, domain.RoleAdmin, ProcessRequest{Action: "reject"})

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestService_Process_CustomerForbidden(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Process(context.Background(), 3, 7, domain.RoleCustomer, ProcessRequest{Action: "approve"})

	assert.ErrorIs(t, err, ErrForbidden)
}

func ptr(v int64) *int64 { return &v }

// ptrMatch matches a *int64 argument by value.
func ptrMatch(v int64) interface{} {
	return mock.MatchedBy(func(p *int64) bool {
		return p != nil && *p == v
	})
}
