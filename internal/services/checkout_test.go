package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/config"
	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/order"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/denmor86/ya-beautystudio/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var invoiceNumberPattern = regexp.MustCompile(`^ORD-[A-Z]{3}-\d{4}-\d{2}-\d{3}$`)

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName string
		IntN     func(n int) int
		Expected string
	}{
		{TestName: "Lowest values #1", IntN: func(int) int { return 0 }, Expected: "ORD-AAA-2024-03-000"},
		{TestName: "Highest values #2", IntN: func(n int) int { return n - 1 }, Expected: "ORD-ZZZ-2024-03-999"},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			got := GenerateInvoiceNumber(now, tc.IntN)
			if got != tc.Expected {
				t.Errorf("Expected %q, got %q", tc.Expected, got)
			}
		})
	}

	for i := 0; i < 100; i++ {
		number := GenerateInvoiceNumber(time.Now(), NewCheckout(nil, nil).IntN)
		if !invoiceNumberPattern.MatchString(number) {
			t.Fatalf("invoice number %q does not match format", number)
		}
	}
}

func TestCalculateDiscountedPrice(t *testing.T) {
	testCases := []struct {
		TestName string
		Price    decimal.Decimal
		Discount decimal.NullDecimal
		Expected decimal.Decimal
	}{
		{
			TestName: "Quarter off #1",
			Price:    decimal.NewFromInt(100),
			Discount: decimal.NewNullDecimal(decimal.NewFromInt(25)),
			Expected: decimal.NewFromInt(75),
		},
		{
			TestName: "No discount #2",
			Price:    decimal.NewFromInt(100),
			Expected: decimal.NewFromInt(100),
		},
		{
			TestName: "Rounded to cents #3",
			Price:    decimal.RequireFromString("99.99"),
			Discount: decimal.NewNullDecimal(decimal.NewFromInt(15)),
			Expected: decimal.RequireFromString("84.99"),
		},
		{
			TestName: "Zero discount #4",
			Price:    decimal.NewFromInt(40),
			Discount: decimal.NewNullDecimal(decimal.Zero),
			Expected: decimal.NewFromInt(40),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			got := CalculateDiscountedPrice(tc.Price, tc.Discount)
			if !got.Equal(tc.Expected) {
				t.Errorf("Expected %s, got %s", tc.Expected, got)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}

// bookedSnapshot - заказ на стрижку со скидкой, доп. услугой и товаром
func bookedSnapshot() order.Snapshot {
	o := order.New()
	o.SetCustomer(models.Customer{Name: "Anna", Email: "anna@example.com", Phone: "+79990001122"})
	o.SetSelectedService(&models.Service{
		ID:       1,
		Name:     "Haircut",
		Price:    decimal.NewFromInt(100),
		Duration: 60,
		Discount: decimal.NewNullDecimal(decimal.NewFromInt(25)),
	})
	o.ToggleService(2)
	o.SetSelectedStaff(&models.Staff{ID: 7, FullName: "Maria Ivanova"})
	o.AddServiceProvider(2, "Olga Petrova")
	o.SetAppointmentDate(time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC))
	o.SetAppointmentTime("15:00")
	o.SetPaymentMethod("card")
	o.AddProduct(models.Product{ID: 11, Name: "Shampoo", Price: decimal.NewFromInt(30)})
	return o.Snapshot()
}

func TestCheckout_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	checkout := NewCheckout(mockStorage, mockStorage)
	checkout.Now = func() time.Time { return time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC) }
	checkout.IntN = func(int) int { return 1 }

	coloring := models.Service{ID: 2, Name: "Coloring", Price: decimal.NewFromInt(50), Duration: 90}
	info := models.RequestInfo{IP: "8.8.8.8", Location: UnknownLocation}

	testCases := []struct {
		TestName       string
		Snapshot       order.Snapshot
		IdempotencyKey string
		SetupMocks     func()
		ExpectedNumber string
		ExpectedError  error
	}{
		{
			TestName:      "Error. Empty order #1",
			Snapshot:      order.New().Snapshot(),
			SetupMocks:    func() {},
			ExpectedError: ErrEmptyOrder,
		},
		{
			TestName: "Error. Already completed #2",
			Snapshot: func() order.Snapshot {
				s := bookedSnapshot()
				s.OrderID = strPtr("ORD-ABC-2024-03-001")
				return s
			}(),
			SetupMocks:    func() {},
			ExpectedError: ErrOrderCompleted,
		},
		{
			TestName: "Error. Insert failed #3",
			Snapshot: bookedSnapshot(),
			SetupMocks: func() {
				mockStorage.EXPECT().GetServices(gomock.Any(), []int64{2}).Return([]models.Service{coloring}, nil)
				mockStorage.EXPECT().AddInvoice(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			ExpectedError: errors.New("insert failed"),
		},
		{
			TestName: "Success #4",
			Snapshot: bookedSnapshot(),
			SetupMocks: func() {
				mockStorage.EXPECT().GetServices(gomock.Any(), []int64{2}).Return([]models.Service{coloring}, nil)
				mockStorage.EXPECT().AddInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv models.InvoiceData) (*models.InvoiceData, error) {
						inv.ID = 1
						return &inv, nil
					})
			},
			ExpectedNumber: "ORD-BBB-2024-03-001",
		},
		{
			TestName:       "Success. Resubmit with same key #5",
			Snapshot:       bookedSnapshot(),
			IdempotencyKey: "key-1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoiceByKey(gomock.Any(), "key-1").Return(&models.InvoiceData{Number: "ORD-XYZ-2024-03-042"}, nil)
			},
			ExpectedNumber: "ORD-XYZ-2024-03-042",
		},
		{
			TestName:       "Success. Concurrent submit with same key #6",
			Snapshot:       bookedSnapshot(),
			IdempotencyKey: "key-2",
			SetupMocks: func() {
				gomock.InOrder(
					mockStorage.EXPECT().GetInvoiceByKey(gomock.Any(), "key-2").Return(nil, storage.ErrNotFound),
					mockStorage.EXPECT().GetServices(gomock.Any(), []int64{2}).Return([]models.Service{coloring}, nil),
					mockStorage.EXPECT().AddInvoice(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists),
					mockStorage.EXPECT().GetInvoiceByKey(gomock.Any(), "key-2").Return(&models.InvoiceData{Number: "ORD-QQQ-2024-03-100"}, nil),
				)
			},
			ExpectedNumber: "ORD-QQQ-2024-03-100",
		},
		{
			TestName: "Success. Completed order resubmitted with same key #7",
			Snapshot: func() order.Snapshot {
				s := bookedSnapshot()
				s.OrderID = strPtr("ORD-XYZ-2024-03-042")
				return s
			}(),
			IdempotencyKey: "key-3",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoiceByKey(gomock.Any(), "key-3").Return(&models.InvoiceData{Number: "ORD-XYZ-2024-03-042"}, nil)
			},
			ExpectedNumber: "ORD-XYZ-2024-03-042",
		},
		{
			TestName: "Error. Completed order with unknown key #8",
			Snapshot: func() order.Snapshot {
				s := bookedSnapshot()
				s.OrderID = strPtr("ORD-XYZ-2024-03-042")
				return s
			}(),
			IdempotencyKey: "key-4",
			SetupMocks: func() {
				mockStorage.EXPECT().GetInvoiceByKey(gomock.Any(), "key-4").Return(nil, storage.ErrNotFound)
			},
			ExpectedError: ErrOrderCompleted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			invoice, err := checkout.Submit(context.Background(), tc.Snapshot, info, tc.IdempotencyKey)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedNumber != "" && (invoice == nil || invoice.Number != tc.ExpectedNumber) {
				t.Errorf("Expected invoice %q, got %+v", tc.ExpectedNumber, invoice)
			}
		})
	}
}

func TestCheckout_BuildAppointment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	checkout := NewCheckout(mockStorage, mockStorage)
	coloring := models.Service{ID: 2, Name: "Coloring", Price: decimal.NewFromInt(50), Duration: 90}
	mockStorage.EXPECT().GetServices(gomock.Any(), []int64{2}).Return([]models.Service{coloring}, nil)

	appointment, err := checkout.BuildAppointment(context.Background(), bookedSnapshot(), models.RequestInfo{})
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	type line struct {
		ID        int64
		StaffID   int64
		StaffName string
		Date      string
		Time      string
		Net       string
	}
	got := []line{}
	for _, s := range appointment.Services {
		got = append(got, line{s.ID, s.StaffID, s.StaffName, s.Date, s.Time, s.DiscountedPrice.String()})
	}
	expected := []line{
		{ID: 1, StaffID: 7, StaffName: "Maria Ivanova", Date: "2024-03-10", Time: "15:00", Net: "75"},
		{ID: 2, StaffName: "Olga Petrova", Date: "2024-03-10", Time: "15:00", Net: "50"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("service lines mismatch:\n %s", diff)
	}

	if len(appointment.Products) != 1 || appointment.Products[0].Quantity != 1 {
		t.Errorf("Expected one product with quantity 1, got %+v", appointment.Products)
	}

	payment := appointment.PaymentDetails
	if payment.Method != "card" {
		t.Errorf("Expected payment method card, got %q", payment.Method)
	}
	if !payment.TotalAmount.Equal(decimal.NewFromInt(180)) {
		t.Errorf("Expected gross 180, got %s", payment.TotalAmount)
	}
	if !payment.DiscountAmount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected discount 25, got %s", payment.DiscountAmount)
	}
	if !payment.PaidAmount.Equal(decimal.NewFromInt(155)) {
		t.Errorf("Expected paid 155, got %s", payment.PaidAmount)
	}
}
