package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/order"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyOrder     = errors.New("order has no services")
	ErrOrderCompleted = errors.New("order already submitted")
)

var hundred = decimal.NewFromInt(100)

type CheckoutService interface {
	Submit(ctx context.Context, snapshot order.Snapshot, info models.RequestInfo, idempotencyKey string) (*models.InvoiceData, error)
}

type Checkout struct {
	Catalog  storage.CatalogStorage
	Invoices storage.InvoicesStorage
	// источники времени и случайности, подменяются в тестах
	Now  func() time.Time
	IntN func(n int) int
}

// Создание сервиса
func NewCheckout(catalog storage.CatalogStorage, invoices storage.InvoicesStorage) *Checkout {
	return &Checkout{
		Catalog:  catalog,
		Invoices: invoices,
		Now:      time.Now,
		IntN:     rand.IntN,
	}
}

// GenerateInvoiceNumber - номер вида ORD-XXX-YYYY-MM-NNN. Коллизии не проверяются.
func GenerateInvoiceNumber(now time.Time, intN func(n int) int) string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + intN(26))
	}
	return fmt.Sprintf("ORD-%s-%04d-%02d-%03d", letters, now.Year(), int(now.Month()), intN(1000))
}

// CalculateDiscountedPrice - price * (1 - discount/100); без скидки цена не меняется.
// Диапазон скидки здесь не проверяется.
func CalculateDiscountedPrice(price decimal.Decimal, discount decimal.NullDecimal) decimal.Decimal {
	if !discount.Valid {
		return price
	}
	return price.Mul(decimal.NewFromInt(1).Sub(discount.Decimal.Div(hundred))).Round(2)
}

// Submit - собирает снимок заказа в счёт и записывает его одной вставкой со статусом waiting.
// Без ключа идемпотентности повторная отправка создаёт новый счёт с новым номером.
func (s *Checkout) Submit(ctx context.Context, snapshot order.Snapshot, info models.RequestInfo, idempotencyKey string) (*models.InvoiceData, error) {
	// повтор с уже записанным ключом возвращает тот же счёт даже после завершения заказа
	if idempotencyKey != "" {
		existing, err := s.Invoices.GetInvoiceByKey(ctx, idempotencyKey)
		if err == nil {
			logger.Info("Invoice already submitted with key", existing.Number)
			return existing, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}
	if snapshot.Completed() {
		return nil, ErrOrderCompleted
	}

	appointment, err := s.BuildAppointment(ctx, snapshot, info)
	if err != nil {
		return nil, err
	}

	invoice := models.InvoiceData{
		Number:            GenerateInvoiceNumber(s.Now(), s.IntN),
		TotalAmount:       appointment.PaymentDetails.PaidAmount,
		Status:            models.InvoiceStatusWaiting,
		AppointmentStatus: models.AppointmentStatusPending,
		Appointment:       appointment,
		IdempotencyKey:    idempotencyKey,
	}

	created, err := s.Invoices.AddInvoice(ctx, invoice)
	if err != nil {
		// параллельная отправка с тем же ключом успела раньше
		if errors.Is(err, storage.ErrAlreadyExists) && idempotencyKey != "" {
			return s.Invoices.GetInvoiceByKey(ctx, idempotencyKey)
		}
		logger.Errorw("Failed to add invoice", zap.Error(err))
		return nil, err
	}
	logger.Info("Invoice created", created.Number, created.TotalAmount.String())
	return created, nil
}

// BuildAppointment - снимок заказа для appointment_json
func (s *Checkout) BuildAppointment(ctx context.Context, snapshot order.Snapshot, info models.RequestInfo) (models.AppointmentSnapshot, error) {
	services, err := s.orderServices(ctx, snapshot)
	if err != nil {
		return models.AppointmentSnapshot{}, err
	}
	if len(services) == 0 {
		return models.AppointmentSnapshot{}, ErrEmptyOrder
	}

	var (
		gross = decimal.Zero
		net   = decimal.Zero
	)
	appointment := models.AppointmentSnapshot{
		CustomerInfo: snapshot.Customer,
		Services:     make([]models.ServiceLine, 0, len(services)),
		Products:     make([]models.ProductLine, 0, len(snapshot.SelectedProducts)),
		RequestInfo:  info,
	}

	for _, service := range services {
		line := models.ServiceLine{
			ID:              service.ID,
			Name:            service.Name,
			Price:           service.Price,
			Discount:        discountValue(service.Discount),
			DiscountedPrice: CalculateDiscountedPrice(service.Price, service.Discount),
			Duration:        service.Duration,
		}
		if snapshot.AppointmentDate != nil {
			line.Date = *snapshot.AppointmentDate
		}
		if snapshot.AppointmentTime != nil {
			line.Time = *snapshot.AppointmentTime
		}
		if name, ok := snapshot.ProviderFor(service.ID); ok {
			line.StaffName = name
		}
		if snapshot.SelectedService != nil && service.ID == snapshot.SelectedService.ID && snapshot.SelectedStaff != nil {
			line.StaffID = snapshot.SelectedStaff.ID
			if line.StaffName == "" {
				line.StaffName = snapshot.SelectedStaff.FullName
			}
		}
		gross = gross.Add(line.Price)
		net = net.Add(line.DiscountedPrice)
		appointment.Services = append(appointment.Services, line)
	}

	// количество товара не задаётся в заказе, всегда 1
	for _, product := range snapshot.SelectedProducts {
		line := models.ProductLine{
			ID:              product.ID,
			Name:            product.Name,
			Price:           product.Price,
			Discount:        discountValue(product.Discount),
			DiscountedPrice: CalculateDiscountedPrice(product.Price, product.Discount),
			Quantity:        1,
		}
		gross = gross.Add(line.Price)
		net = net.Add(line.DiscountedPrice)
		appointment.Products = append(appointment.Products, line)
	}

	appointment.PaymentDetails = models.PaymentDetails{
		TotalAmount:    gross,
		DiscountAmount: gross.Sub(net),
		PaidAmount:     net,
	}
	if snapshot.PaymentMethod != nil {
		appointment.PaymentDetails.Method = *snapshot.PaymentMethod
	}
	return appointment, nil
}

// orderServices - выбранная услуга и услуги мультивыбора, без повторов
func (s *Checkout) orderServices(ctx context.Context, snapshot order.Snapshot) ([]models.Service, error) {
	var services []models.Service
	seen := make(map[int64]struct{})
	if snapshot.SelectedService != nil {
		services = append(services, *snapshot.SelectedService)
		seen[snapshot.SelectedService.ID] = struct{}{}
	}

	var ids []int64
	for _, id := range snapshot.SelectedServices {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return services, nil
	}

	extra, err := s.Catalog.GetServices(ctx, ids)
	if err != nil {
		logger.Errorw("Failed to get selected services", zap.Error(err))
		return nil, err
	}
	for _, service := range extra {
		if _, ok := seen[service.ID]; ok {
			continue
		}
		seen[service.ID] = struct{}{}
		services = append(services, service)
	}
	return services, nil
}

func discountValue(discount decimal.NullDecimal) decimal.Decimal {
	if !discount.Valid {
		return decimal.Zero
	}
	return discount.Decimal
}
