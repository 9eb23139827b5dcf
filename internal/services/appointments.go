package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/denmor86/ya-beautystudio/internal/search"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrAlreadyCancelled     = errors.New("appointment already cancelled")
	ErrAppointmentCompleted = errors.New("appointment already completed")
)

type AppointmentsService interface {
	GetInvoice(ctx context.Context, number string) (*models.InvoiceData, error)
	CancelAppointment(ctx context.Context, number string) (*models.InvoiceData, error)
	ListInvoices(ctx context.Context, status string, page int) (search.Page[models.InvoiceResponse], error)
	UpdateAppointmentStatus(ctx context.Context, number string, status string) (*models.InvoiceData, error)
}

type Appointments struct {
	Storage  storage.InvoicesStorage
	PageSize int
}

// Создание сервиса
func NewAppointments(storage storage.InvoicesStorage, pageSize int) AppointmentsService {
	return &Appointments{Storage: storage, PageSize: pageSize}
}

// статусы, которые может выставить администратор
var adminStatuses = map[string]struct{}{
	models.AppointmentStatusConfirmed: {},
	models.AppointmentStatusCompleted: {},
	models.AppointmentStatusCancelled: {},
}

func (s *Appointments) GetInvoice(ctx context.Context, number string) (*models.InvoiceData, error) {
	return s.Storage.GetInvoice(ctx, number)
}

// CancelAppointment - отмена записи клиентом. Завершённую запись отменить нельзя.
func (s *Appointments) CancelAppointment(ctx context.Context, number string) (*models.InvoiceData, error) {
	invoice, err := s.Storage.GetInvoice(ctx, number)
	if err != nil {
		return nil, err
	}
	switch invoice.AppointmentStatus {
	case models.AppointmentStatusCancelled:
		return nil, ErrAlreadyCancelled
	case models.AppointmentStatusCompleted:
		return nil, ErrAppointmentCompleted
	}
	if err := s.Storage.UpdateAppointmentStatus(ctx, invoice.ID, models.AppointmentStatusCancelled); err != nil {
		logger.Errorw("Failed to cancel appointment", zap.String("invoice", number), zap.Error(err))
		return nil, err
	}
	invoice.AppointmentStatus = models.AppointmentStatusCancelled
	logger.Info("Appointment cancelled", number)
	return invoice, nil
}

// ListInvoices - страница счетов, новые первыми; пустой status - все
func (s *Appointments) ListInvoices(ctx context.Context, status string, page int) (search.Page[models.InvoiceResponse], error) {
	if status != "" && status != models.AppointmentStatusPending {
		if _, ok := adminStatuses[status]; !ok {
			return search.Page[models.InvoiceResponse]{}, ErrInvalidStatus
		}
	}
	limit, offset, page := search.Bounds(page, s.PageSize)
	invoices, total, err := s.Storage.ListInvoices(ctx, status, limit, offset)
	if err != nil {
		logger.Errorw("Failed to list invoices", zap.Error(err))
		return search.Page[models.InvoiceResponse]{}, err
	}
	items := make([]models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, models.NewInvoiceResponse(invoices[i]))
	}
	return search.NewPage(items, page, limit, total), nil
}

// UpdateAppointmentStatus - смена статуса записи администратором
func (s *Appointments) UpdateAppointmentStatus(ctx context.Context, number string, status string) (*models.InvoiceData, error) {
	if _, ok := adminStatuses[status]; !ok {
		return nil, ErrInvalidStatus
	}
	invoice, err := s.Storage.GetInvoice(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := s.Storage.UpdateAppointmentStatus(ctx, invoice.ID, status); err != nil {
		return nil, err
	}
	invoice.AppointmentStatus = status
	logger.Info("Appointment status updated", number, status)
	return invoice, nil
}
