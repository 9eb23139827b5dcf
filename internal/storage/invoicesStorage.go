package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-beautystudio/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	invoiceColumns = `id, invoice_number, total_amount, status, appointment_status, appointment_json, COALESCE(idempotency_key, ''), issued_at`

	InsertInvoice = `INSERT INTO INVOICES (invoice_number, total_amount, status, appointment_status, appointment_json, idempotency_key)
						VALUES ($1, $2, $3, $4, $5, $6)
						ON CONFLICT (idempotency_key) DO NOTHING
						RETURNING id, issued_at;`
	GetInvoice      = `SELECT ` + invoiceColumns + ` FROM INVOICES WHERE invoice_number=$1 ORDER BY issued_at DESC LIMIT 1;`
	GetInvoiceByKey = `SELECT ` + invoiceColumns + ` FROM INVOICES WHERE idempotency_key=$1;`
	ListInvoices    = `SELECT ` + invoiceColumns + `, COUNT(*) OVER() AS total
						FROM INVOICES
						WHERE $1 = '' OR appointment_status = $1
						ORDER BY issued_at DESC, id DESC
						LIMIT $2 OFFSET $3;`
	UpdateAppointmentStatus = `UPDATE INVOICES SET appointment_status = $1 WHERE id = $2;`
)

type InvoicesDatabase struct {
	DB *Database
}

// Создание хранилища
func NewInvoicesStorage(db *Database) InvoicesStorage {
	return &InvoicesDatabase{DB: db}
}

// AddInvoice - одна вставка счёта; при повторе ключа идемпотентности возвращает ErrAlreadyExists
func (s *InvoicesDatabase) AddInvoice(ctx context.Context, invoice models.InvoiceData) (*models.InvoiceData, error) {
	appointment, err := json.Marshal(invoice.Appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appointment: %w", err)
	}
	var key *string
	if invoice.IdempotencyKey != "" {
		key = &invoice.IdempotencyKey
	}

	err = s.DB.Pool.QueryRow(
		ctx,
		InsertInvoice,
		invoice.Number,
		invoice.TotalAmount,
		invoice.Status,
		invoice.AppointmentStatus,
		appointment,
		key,
	).Scan(&invoice.ID, &invoice.IssuedAt)

	if err == nil {
		return &invoice, nil
	}
	// ON CONFLICT DO NOTHING не возвращает строк
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrAlreadyExists
	}
	return nil, fmt.Errorf("failed to add invoice: %w", err)
}

func (s *InvoicesDatabase) GetInvoice(ctx context.Context, number string) (*models.InvoiceData, error) {
	return s.getInvoice(ctx, GetInvoice, number)
}

func (s *InvoicesDatabase) GetInvoiceByKey(ctx context.Context, idempotencyKey string) (*models.InvoiceData, error) {
	return s.getInvoice(ctx, GetInvoiceByKey, idempotencyKey)
}

func (s *InvoicesDatabase) getInvoice(ctx context.Context, query string, arg string) (*models.InvoiceData, error) {
	invoice, _, err := scanInvoice(s.DB.Pool.QueryRow(ctx, query, arg), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

// ListInvoices - страница счетов (новые первыми) и общее количество
func (s *InvoicesDatabase) ListInvoices(ctx context.Context, appointmentStatus string, limit, offset int) ([]models.InvoiceData, int, error) {
	rows, err := s.DB.Pool.Query(ctx, ListInvoices, appointmentStatus, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get invoices: %w", err)
	}
	defer rows.Close()

	var (
		invoices = []models.InvoiceData{}
		total    int
	)
	for rows.Next() {
		invoice, count, err := scanInvoice(rows, true)
		if err != nil {
			return invoices, 0, fmt.Errorf("failed scan invoice data: %w", err)
		}
		total = count
		invoices = append(invoices, invoice)
	}
	return invoices, total, rows.Err()
}

// UpdateAppointmentStatus - смена статуса одной записи по id счёта (номер счёта не уникален)
func (s *InvoicesDatabase) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateAppointmentStatus, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %w", ErrNotFound)
	}
	return nil
}

func scanInvoice(row pgx.Row, withTotal bool) (models.InvoiceData, int, error) {
	var (
		invoice     models.InvoiceData
		appointment []byte
		total       decimal.Decimal
		issuedAt    time.Time
		count       int
	)
	dest := []any{
		&invoice.ID,
		&invoice.Number,
		&total,
		&invoice.Status,
		&invoice.AppointmentStatus,
		&appointment,
		&invoice.IdempotencyKey,
		&issuedAt,
	}
	if withTotal {
		dest = append(dest, &count)
	}
	if err := row.Scan(dest...); err != nil {
		return invoice, 0, err
	}
	if err := json.Unmarshal(appointment, &invoice.Appointment); err != nil {
		return invoice, 0, fmt.Errorf("failed to decode appointment: %w", err)
	}
	invoice.TotalAmount = total
	invoice.IssuedAt = issuedAt
	return invoice, count, nil
}
