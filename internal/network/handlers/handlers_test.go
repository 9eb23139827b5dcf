package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/denmor86/ya-beautystudio/internal/sessions"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/denmor86/ya-beautystudio/internal/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestServiceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	r := chi.NewRouter()
	r.Get("/services/{id}", ServiceHandler(services.NewCatalog(mockStorage, 10)))

	testCases := []struct {
		TestName       string
		Target         string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			TestName:       "Invalid id #1",
			Target:         "/services/abc",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			TestName: "Not found #2",
			Target:   "/services/5",
			SetupMocks: func() {
				mockStorage.EXPECT().GetService(gomock.Any(), int64(5)).Return(nil, fmt.Errorf("service 5 %w", storage.ErrNotFound))
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			TestName: "Storage error #3",
			Target:   "/services/6",
			SetupMocks: func() {
				mockStorage.EXPECT().GetService(gomock.Any(), int64(6)).Return(nil, errors.New("connection refused"))
			},
			ExpectedStatus: http.StatusInternalServerError,
		},
		{
			TestName: "Success #4",
			Target:   "/services/1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetService(gomock.Any(), int64(1)).Return(&models.Service{ID: 1, Name: "Haircut", Price: decimal.NewFromInt(100)}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.Target, nil))
			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected %d, got %d", tc.ExpectedStatus, rec.Code)
			}
		})
	}
}

func TestServicesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	mockStorage.EXPECT().ListServices(gomock.Any()).Return([]models.Service{
		{ID: 1, Name: "Manicure"},
		{ID: 2, Name: "Pedicure"},
		{ID: 3, Name: "Haircut"},
	}, nil)

	rec := httptest.NewRecorder()
	ServicesHandler(services.NewCatalog(mockStorage, 1)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services?search=cure&page=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Items   []models.Service `json:"items"`
		Total   int              `json:"total"`
		HasMore bool             `json:"has_more"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(body.Items) != 1 || body.Total != 2 || !body.HasMore {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestInvoiceHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	a := services.NewAppointments(mockStorage, 10)
	r := chi.NewRouter()
	r.Get("/invoices/{number}", GetInvoiceHandler(a))
	r.Post("/invoices/{number}/cancel", CancelInvoiceHandler(a))
	r.Patch("/invoices/{number}/status", UpdateStatusHandler(a))

	testCases := []struct {
		TestName       string
		Method         string
		Target         string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			TestName: "Get not found #1",
			Method:   http.MethodGet,
			Target:   "/invoices/ORD-AAA-2024-01-001",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoice(gomock.Any(), "ORD-AAA-2024-01-001").Return(nil, fmt.Errorf("invoice %w", storage.ErrNotFound))
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			TestName: "Get success #2",
			Method:   http.MethodGet,
			Target:   "/invoices/ORD-AAA-2024-01-002",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoice(gomock.Any(), "ORD-AAA-2024-01-002").Return(&models.InvoiceData{Number: "ORD-AAA-2024-01-002", IssuedAt: time.Now()}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			TestName: "Cancel twice #3",
			Method:   http.MethodPost,
			Target:   "/invoices/ORD-AAA-2024-01-003/cancel",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoice(gomock.Any(), "ORD-AAA-2024-01-003").Return(&models.InvoiceData{AppointmentStatus: models.AppointmentStatusCancelled}, nil)
			},
			ExpectedStatus: http.StatusConflict,
		},
		{
			TestName:       "Status malformed body #4",
			Method:         http.MethodPatch,
			Target:         "/invoices/ORD-AAA-2024-01-004/status",
			Body:           "{",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			TestName:       "Status not allowed #5",
			Method:         http.MethodPatch,
			Target:         "/invoices/ORD-AAA-2024-01-004/status",
			Body:           `{"appointment_status":"lost"}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			TestName: "Status confirmed #6",
			Method:   http.MethodPatch,
			Target:   "/invoices/ORD-AAA-2024-01-004/status",
			Body:     `{"appointment_status":"confirmed"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoice(gomock.Any(), "ORD-AAA-2024-01-004").Return(&models.InvoiceData{ID: 4, AppointmentStatus: models.AppointmentStatusPending}, nil)
				mockStorage.EXPECT().UpdateAppointmentStatus(gomock.Any(), int64(4), models.AppointmentStatusConfirmed).Return(nil)
			},
			ExpectedStatus: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.Method, tc.Target, strings.NewReader(tc.Body)))
			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected %d, got %d", tc.ExpectedStatus, rec.Code)
			}
		})
	}
}

// staffFunc - подмена сервиса доступности
type staffFunc func(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error)

func (f staffFunc) GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error) {
	return f(ctx, serviceID, date)
}

func TestStaffHandler(t *testing.T) {
	availability := staffFunc(func(_ context.Context, serviceID int64, _ time.Time) ([]models.Staff, error) {
		switch serviceID {
		case 1:
			return []models.Staff{}, nil
		case 2:
			return nil, errors.New("rpc failed")
		}
		return []models.Staff{{ID: 3, FullName: "Olga Petrova"}}, nil
	})
	store := sessions.NewStore(availability, nil, 10)
	session := store.Create()

	r := chi.NewRouter()
	r.Get("/sessions/{"+SessionParam+"}/staff", StaffHandler(store))

	testCases := []struct {
		TestName       string
		Query          string
		ExpectedStatus int
		ExpectedState  string
	}{
		{TestName: "No service #1", Query: "date=2024-03-10", ExpectedStatus: http.StatusBadRequest},
		{TestName: "Bad date #2", Query: "service_id=1&date=10.03.2024", ExpectedStatus: http.StatusBadRequest},
		{TestName: "Empty #3", Query: "service_id=1&date=2024-03-10", ExpectedStatus: http.StatusOK, ExpectedState: services.StaffStatusEmpty},
		{TestName: "Backend error #4", Query: "service_id=2&date=2024-03-10", ExpectedStatus: http.StatusBadGateway, ExpectedState: services.StaffStatusError},
		{TestName: "Ready #5", Query: "service_id=3&date=2024-03-10", ExpectedStatus: http.StatusOK, ExpectedState: services.StaffStatusReady},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+session.ID+"/staff?"+tc.Query, nil))
			if rec.Code != tc.ExpectedStatus {
				t.Fatalf("Expected %d, got %d", tc.ExpectedStatus, rec.Code)
			}
			if tc.ExpectedState == "" {
				return
			}
			var state services.StaffState
			if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}
			if state.Status != tc.ExpectedState {
				t.Errorf("Expected state %s, got %s", tc.ExpectedState, state.Status)
			}
		})
	}
}

func TestProductsHandler(t *testing.T) {
	calls := []string{}
	fetch := func(_ context.Context, term string, limit, offset int) ([]models.Product, int, error) {
		calls = append(calls, fmt.Sprintf("%s:%d", term, offset))
		if offset >= 3 {
			return []models.Product{}, 3, nil
		}
		return []models.Product{{ID: int64(offset + 1)}, {ID: int64(offset + 2)}}[:min(2, 3-offset)], 3, nil
	}
	store := sessions.NewStore(staffFunc(nil), fetch, 2)
	session := store.Create()

	r := chi.NewRouter()
	r.Get("/sessions/{"+SessionParam+"}/products", ProductsHandler(store))

	get := func(query string) (int, int) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+session.ID+"/products?"+query, nil))
		var body struct {
			Items []models.Product `json:"items"`
		}
		_ = json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body)
		return rec.Code, len(body.Items)
	}

	if code, n := get("search=cream"); code != http.StatusOK || n != 2 {
		t.Errorf("Expected 200 with 2 items, got %d with %d", code, n)
	}
	if code, n := get("more=true"); code != http.StatusOK || n != 3 {
		t.Errorf("Expected 200 with 3 accumulated items, got %d with %d", code, n)
	}
	if len(calls) != 2 || calls[1] != "cream:2" {
		t.Errorf("unexpected fetch calls: %v", calls)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/unknown/products", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown session, got %d", rec.Code)
	}
}
