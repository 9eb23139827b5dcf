package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestAvailability_GetAvailableStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	availability := NewAvailability(mockStorage)
	date := time.Date(2024, time.March, 10, 18, 30, 0, 0, time.FixedZone("MSK", 3*3600))
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName      string
		ServiceID     int64
		SetupMocks    func()
		ExpectedStaff []models.Staff
		ExpectedError error
	}{
		{
			TestName:      "Error. Invalid service #1",
			ServiceID:     0,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidServiceID,
		},
		{
			TestName:  "Error. Storage failed #2",
			ServiceID: 1,
			SetupMocks: func() {
				mockStorage.EXPECT().GetAvailableStaff(gomock.Any(), int64(1), day).Return(nil, errors.New("rpc failed"))
			},
			ExpectedError: errors.New("rpc failed"),
		},
		{
			TestName:  "Success. Nobody available #3",
			ServiceID: 1,
			SetupMocks: func() {
				mockStorage.EXPECT().GetAvailableStaff(gomock.Any(), int64(1), day).Return(nil, nil)
			},
			ExpectedStaff: []models.Staff{},
		},
		{
			TestName:  "Success #4",
			ServiceID: 2,
			SetupMocks: func() {
				mockStorage.EXPECT().GetAvailableStaff(gomock.Any(), int64(2), day).Return([]models.Staff{{ID: 3, FullName: "Maria Ivanova"}}, nil)
			},
			ExpectedStaff: []models.Staff{{ID: 3, FullName: "Maria Ivanova"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			staff, err := availability.GetAvailableStaff(context.Background(), tc.ServiceID, date)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.ExpectedStaff, staff); diff != "" {
				t.Errorf("staff mismatch:\n %s", diff)
			}
		})
	}
}

// availabilityFunc - подмена сервиса доступности в тестах
type availabilityFunc func(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error)

func (f availabilityFunc) GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error) {
	return f(ctx, serviceID, date)
}

func TestStaffLookup_States(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName       string
		Result         []models.Staff
		Err            error
		ExpectedStatus string
		ExpectedStaff  []models.Staff
	}{
		{TestName: "Empty #1", Result: []models.Staff{}, ExpectedStatus: StaffStatusEmpty, ExpectedStaff: []models.Staff{}},
		{TestName: "Error #2", Err: errors.New("network down"), ExpectedStatus: StaffStatusError, ExpectedStaff: []models.Staff{}},
		{
			TestName:       "Ready #3",
			Result:         []models.Staff{{ID: 1, FullName: "Olga Petrova"}},
			ExpectedStatus: StaffStatusReady,
			ExpectedStaff:  []models.Staff{{ID: 1, FullName: "Olga Petrova"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			lookup := NewStaffLookup(availabilityFunc(func(context.Context, int64, time.Time) ([]models.Staff, error) {
				return tc.Result, tc.Err
			}))
			if lookup.State().Status != StaffStatusIdle {
				t.Fatalf("Expected idle state before first fetch")
			}
			state, err := lookup.Fetch(context.Background(), 5, date)
			if !errors.Is(err, tc.Err) {
				t.Errorf("Expected error '%v', got '%v'", tc.Err, err)
			}
			if state.Status != tc.ExpectedStatus {
				t.Errorf("Expected status %s, got %s", tc.ExpectedStatus, state.Status)
			}
			if diff := cmp.Diff(tc.ExpectedStaff, state.Staff); diff != "" {
				t.Errorf("staff mismatch:\n %s", diff)
			}
			if tc.Err != nil && state.Error != tc.Err.Error() {
				t.Errorf("Expected error message in state, got %q", state.Error)
			}
			if state.Date != "2024-03-10" || state.ServiceID != 5 {
				t.Errorf("unexpected request key in state: %+v", state)
			}
		})
	}
}

func TestStaffLookup_StaleResponseDiscarded(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	var lookup *StaffLookup
	lookup = NewStaffLookup(availabilityFunc(func(ctx context.Context, serviceID int64, _ time.Time) ([]models.Staff, error) {
		if serviceID == 1 {
			// пока ждём мастеров для услуги 1, пользователь выбрал услугу 2
			if _, err := lookup.Fetch(context.Background(), 2, date); err != nil {
				return nil, err
			}
			if ctx.Err() == nil {
				t.Errorf("Expected superseded request to be cancelled")
			}
			return []models.Staff{{ID: 100, FullName: "Stale"}}, nil
		}
		return []models.Staff{{ID: 200, FullName: "Fresh"}}, nil
	}))

	_, err := lookup.Fetch(context.Background(), 1, date)
	if !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("Expected ErrStaleResponse, got '%v'", err)
	}
	state := lookup.State()
	if state.ServiceID != 2 || len(state.Staff) != 1 || state.Staff[0].ID != 200 {
		t.Errorf("stale response overwrote fresher one: %+v", state)
	}
}
