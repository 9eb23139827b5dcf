package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks . IStorage

type CatalogStorage interface {
	GetService(ctx context.Context, id int64) (*models.Service, error)
	GetServices(ctx context.Context, ids []int64) ([]models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	SearchProducts(ctx context.Context, term string, limit, offset int) ([]models.Product, int, error)
}

type StaffStorage interface {
	GetAvailableStaff(ctx context.Context, serviceID int64, date time.Time) ([]models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
}

type InvoicesStorage interface {
	AddInvoice(ctx context.Context, invoice models.InvoiceData) (*models.InvoiceData, error)
	GetInvoice(ctx context.Context, number string) (*models.InvoiceData, error)
	GetInvoiceByKey(ctx context.Context, idempotencyKey string) (*models.InvoiceData, error)
	ListInvoices(ctx context.Context, appointmentStatus string, limit, offset int) ([]models.InvoiceData, int, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status string) error
}

// IStorage - всё хранилище целиком, удобно для моков в тестах сервисов
type IStorage interface {
	CatalogStorage
	StaffStorage
	InvoicesStorage
}

type Storage struct {
	CatalogStorage
	StaffStorage
	InvoicesStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		CatalogStorage:  NewCatalogStorage(db),
		StaffStorage:    NewStaffStorage(db),
		InvoicesStorage: NewInvoicesStorage(db),
	}
}

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// уникальность нарушена
const uniqueViolation = "23505"
