package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы счёта
const (
	InvoiceStatusWaiting = "waiting"
)

// Статусы записи (appointment_status)
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// InvoiceData - модель счёта из хранилища
type InvoiceData struct {
	ID                int64
	Number            string
	TotalAmount       decimal.Decimal
	Status            string
	AppointmentStatus string
	Appointment       AppointmentSnapshot
	IdempotencyKey    string
	IssuedAt          time.Time
}

// AppointmentSnapshot - снимок заказа на момент оформления (appointment_json)
type AppointmentSnapshot struct {
	CustomerInfo   Customer       `json:"customer_info"`
	Services       []ServiceLine  `json:"services"`
	Products       []ProductLine  `json:"products"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	RequestInfo    RequestInfo    `json:"request_info"`
}

// ServiceLine - строка услуги в счёте
type ServiceLine struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Discount        decimal.Decimal `json:"discount"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Duration        int             `json:"duration"`
	StaffID         int64           `json:"staff_id,omitempty"`
	StaffName       string          `json:"staff_name,omitempty"`
	Date            string          `json:"date,omitempty"`
	Time            string          `json:"time,omitempty"`
}

// ProductLine - строка товара в счёте
type ProductLine struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Discount        decimal.Decimal `json:"discount"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Quantity        int             `json:"quantity"`
}

// PaymentDetails - итоги оплаты
type PaymentDetails struct {
	Method         string          `json:"payment_method"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
}

// RequestInfo - сведения о клиенте, оформившем заказ (best effort)
type RequestInfo struct {
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Device    string    `json:"device"`
	OS        string    `json:"os"`
	Browser   string    `json:"browser"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// InvoiceResponse - модель счёта для выдачи
type InvoiceResponse struct {
	Number            string              `json:"invoice_number"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	Status            string              `json:"status"`
	AppointmentStatus string              `json:"appointment_status"`
	Appointment       AppointmentSnapshot `json:"appointment_json"`
	IssuedAt          string              `json:"issued_at"`
}

// NewInvoiceResponse - преобразование данных хранилища в ответ
func NewInvoiceResponse(inv InvoiceData) InvoiceResponse {
	return InvoiceResponse{
		Number:            inv.Number,
		TotalAmount:       inv.TotalAmount,
		Status:            inv.Status,
		AppointmentStatus: inv.AppointmentStatus,
		Appointment:       inv.Appointment,
		IssuedAt:          inv.IssuedAt.Format(time.RFC3339),
	}
}
