package models

import (
	"github.com/shopspring/decimal"
)

// Service - услуга салона (таблица services)
type Service struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Duration    int                 `json:"duration"` // минуты
	Discount    decimal.NullDecimal `json:"discount"` // проценты, может отсутствовать
	Benefits    []string            `json:"benefits"`
	ImageURLs   []string            `json:"image_urls"`
}

// Product - товар салона (таблица products)
type Product struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Stock       int                 `json:"stock"`
	Discount    decimal.NullDecimal `json:"discount"`
}

// Staff - мастер, который может выполнить услугу
type Staff struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// Customer - контактные данные клиента в заказе
type Customer struct {
	Name   string `json:"name" validate:"required,max=128"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,e164"`
	Gender string `json:"gender" validate:"omitempty,oneof=female male other"`
}

// ServiceProvider - назначенный на услугу мастер
type ServiceProvider struct {
	ServiceID int64  `json:"service_id"`
	Name      string `json:"name"`
}
